package donations

import (
	"context"
	"time"

	"github.com/sparechange/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sparechange/roundup/services/donations PaymentGW,FeedGW,EventGW

// PaymentGW is the payment processor gateway. All calls are bounded by the
// configured processor timeout; declines surface as *models.ProcessorError.
type PaymentGW interface {
	// CreateCardPayment confirms a card payment immediately (synchronous path)
	CreateCardPayment(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResult, error)
	// CreateBankPayment opens a bank funds movement under a mandate; the
	// processor may legitimately answer with a processing status
	CreateBankPayment(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResult, error)
	// CreateBankCharge is the secondary funds-movement mechanism used when
	// the payment intent path errors
	CreateBankCharge(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResult, error)
}

// FeedGW is the external purchase-transaction feed gateway
type FeedGW interface {
	FetchTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]models.ExternalTransaction, error)
}

// EventGW publishes donation lifecycle events
type EventGW interface {
	PublishDonationCompleted(ctx context.Context, event *models.DonationEvent) error
	PublishDonationFailed(ctx context.Context, event *models.DonationEvent) error
}
