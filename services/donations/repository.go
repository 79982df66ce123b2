package donations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sparechange/roundup/services/donations DonationRepo

// DonationRepo represents the donation repository interface
type DonationRepo interface {
	// donations
	CreateDonation(ctx context.Context, donation *models.Donation) error
	GetDonationByID(ctx context.Context, id uuid.UUID) (*models.Donation, error)
	GetDonationByProcessorRef(ctx context.Context, processorRef string) (*models.Donation, error)
	// UpdateDonationStatus applies a status transition guarded by the version
	// token; returns ErrVersionConflict when the row moved underneath us.
	UpdateDonationStatus(ctx context.Context, id uuid.UUID, version int64, status string, processorRef *string, completedAt *time.Time, simulated bool) error

	// donation transactions
	CreateTransaction(ctx context.Context, txn *models.DonationTransaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.DonationTransaction, error)
	GetTransactionByProcessorRef(ctx context.Context, processorRef string) (*models.DonationTransaction, error)
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, version int64, status string, processorRef *string, processedAt *time.Time) error
	TransactionExistsByExternalID(ctx context.Context, externalTxnID string) (bool, error)
	GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.DonationTransaction, error)
	GetTotalCompletedRoundUps(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// GetMonthToDateTotal returns the sum of completed transaction totals for
	// the user since the first day of the current calendar month (UTC).
	GetMonthToDateTotal(ctx context.Context, userID uuid.UUID, now time.Time) (decimal.Decimal, error)

	// funding instruments (read-only within this service)
	GetInstrumentByID(ctx context.Context, userID, instrumentID uuid.UUID) (*models.FundingInstrument, error)
	GetActiveInstruments(ctx context.Context, userID uuid.UUID) ([]models.FundingInstrument, error)

	// preferences
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.DonationPreferences, error)
	UpsertPreferences(ctx context.Context, prefs *models.DonationPreferences) error

	// charities
	GetCharityName(ctx context.Context, charityID uuid.UUID) (string, error)

	// feed items
	GetFeedItemByItemID(ctx context.Context, itemID string) (*models.FeedItem, error)
	GetFeedItemByUserID(ctx context.Context, userID uuid.UUID) (*models.FeedItem, error)
	MarkFeedItemSynced(ctx context.Context, itemID string, syncedAt time.Time) error

	// webhook event log
	HasProcessedWebhookEvent(ctx context.Context, source, externalEventID string) (bool, error)
	RecordWebhookEvent(ctx context.Context, event *models.WebhookEvent) error

	// user payment profile
	GetCustomerRef(ctx context.Context, userID uuid.UUID) (string, error)
}
