package usecase

import (
	"time"

	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// DonationService implements the donations.DonationUC interface
type DonationService struct {
	cfg       *models.Config
	repo      donations.DonationRepo
	paymentGW donations.PaymentGW
	feedGW    donations.FeedGW
	eventGW   donations.EventGW
	// now is swappable for tests
	now func() time.Time
}

// NewDonationService creates a new donation usecase instance
func NewDonationService(
	cfg *models.Config,
	repo donations.DonationRepo,
	paymentGW donations.PaymentGW,
	feedGW donations.FeedGW,
	eventGW donations.EventGW,
) *DonationService {
	return &DonationService{
		cfg:       cfg,
		repo:      repo,
		paymentGW: paymentGW,
		feedGW:    feedGW,
		eventGW:   eventGW,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *DonationService) processorTimeout() time.Duration {
	seconds := s.cfg.Stripe.TimeoutSeconds
	if seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}
