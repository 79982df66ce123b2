package donations

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sparechange/roundup/services/donations DonationUC

// DonationUC represents the donation usecase interface
type DonationUC interface {
	// donation lifecycle
	SubmitDonation(ctx context.Context, req *models.DonationRequest) (*models.DonationOutcome, error)

	// round-up ingestion
	IngestTransactions(ctx context.Context, userID uuid.UUID, txns []models.ExternalTransaction, prefs *models.DonationPreferences) ([]models.DonationTransaction, error)
	RunRoundUpSweep(ctx context.Context, userID uuid.UUID) error
	GetRoundUpOpportunities(ctx context.Context, userID uuid.UUID) ([]models.RoundUpOpportunity, *models.RoundUpSummary, error)

	// webhook reconciliation
	ApplyProcessorEvent(ctx context.Context, event *models.ProcessorEvent) error
	HandleFeedWebhook(ctx context.Context, req *models.FeedWebhookRequest) error

	// preferences
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.DonationPreferences, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *models.UpdatePreferencesRequest) (*models.DonationPreferences, error)

	// history
	GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.DonationTransaction, error)
	GetTotalDonations(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
