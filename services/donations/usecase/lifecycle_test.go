package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardInstrument(userID uuid.UUID) *models.FundingInstrument {
	return &models.FundingInstrument{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         models.InstrumentKindCard,
		ProcessorRef: "pm_card_123",
		LastFour:     "4242",
		Brand:        "visa",
		IsActive:     true,
		IsDefault:    true,
	}
}

func bankInstrument(userID uuid.UUID) *models.FundingInstrument {
	return &models.FundingInstrument{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         models.InstrumentKindBankAccount,
		ProcessorRef: "pm_bank_123",
		LastFour:     "6789",
		Brand:        "checking",
		IsActive:     true,
		IsDefault:    true,
	}
}

func directRequest(userID uuid.UUID, amount string) *models.DonationRequest {
	return &models.DonationRequest{
		UserID:    userID,
		CharityID: uuid.New(),
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestSubmitDonationValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, err := svc.SubmitDonation(context.Background(), &models.DonationRequest{
		UserID:    uuid.New(),
		CharityID: uuid.New(),
		Amount:    decimal.Zero,
	})
	assert.ErrorIs(t, err, donations.ErrInvalidAmount)

	_, err = svc.SubmitDonation(context.Background(), &models.DonationRequest{
		UserID: uuid.New(),
		Amount: decimal.RequireFromString("5.00"),
	})
	assert.ErrorIs(t, err, donations.ErrCharityRequired)
}

func TestSubmitDonationCardSucceeds(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "25.00")
	instrument := cardInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)

	var created *models.Donation
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Donation) error {
			created = d
			assert.Equal(t, models.DonationStatusPending, d.Status)
			assert.Equal(t, models.DonationKindDirect, d.Kind)
			assert.Equal(t, int64(1), d.Version)
			return nil
		})

	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cr *models.ChargeRequest) (*models.ChargeResult, error) {
			assert.Equal(t, "cus_123", cr.CustomerRef)
			assert.Equal(t, "pm_card_123", cr.InstrumentRef)
			assert.Equal(t, "Direct donation to Ocean Cleanup", cr.Description)
			return &models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "pi_123"}, nil
		})

	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).Return(nil)

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.DonationTransaction) error {
			assert.Equal(t, models.DonationStatusCompleted, txn.Status)
			assert.True(t, txn.RoundUpAmount.IsZero())
			assert.True(t, txn.TotalAmount.Equal(req.Amount))
			require.NotNil(t, txn.ProcessorRef)
			assert.Equal(t, "pi_123", *txn.ProcessorRef)
			return nil
		})

	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCompleted, outcome.Status)
	assert.Equal(t, created.ID, outcome.DonationID)
	assert.Equal(t, "pi_123", outcome.ProcessorRef)
	assert.False(t, outcome.Simulated)
	assert.Equal(t, "visa ****4242", outcome.InstrumentDisplay)
}

func TestSubmitDonationCardDeclined(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "10.00")
	instrumentID := uuid.New()
	req.InstrumentID = &instrumentID

	instrument := cardInstrument(userID)
	instrument.ID = instrumentID

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Food Bank", nil)
	repo.EXPECT().GetInstrumentByID(gomock.Any(), userID, instrumentID).Return(instrument, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "card_declined", Message: "Your card was declined"})

	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusFailed, gomock.Nil(), gomock.Nil(), false).Return(nil)
	eventGW.EXPECT().PublishDonationFailed(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusFailed, outcome.Status)
	assert.Contains(t, outcome.Message, "Your card was declined")
	// A failed direct donation leaves no funds-movement record
	assert.Nil(t, outcome.TransactionID)
}

func TestSubmitDonationBankFallsBackToCharge(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "50.00")
	instrument := bankInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Animal Shelter", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateBankPayment(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "missing_mandate", Message: "No mandate on file"})
	paymentGW.EXPECT().CreateBankCharge(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "ch_456"}, nil)

	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).Return(nil)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCompleted, outcome.Status)
	assert.Equal(t, "ch_456", outcome.ProcessorRef)
	assert.False(t, outcome.Simulated)
}

func TestSubmitDonationBankFallsBackToSimulation(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "50.00")
	instrument := bankInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Animal Shelter", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateBankPayment(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "missing_mandate", Message: "No mandate on file"})
	paymentGW.EXPECT().CreateBankCharge(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "invalid_source", Message: "Invalid source"})

	// The simulation substitutes a generic verified card and still runs
	// through the processor
	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cr *models.ChargeRequest) (*models.ChargeResult, error) {
			assert.Equal(t, "pm_card_visa", cr.InstrumentRef)
			assert.Equal(t, "true", cr.Metadata["simulated"])
			return &models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "pi_sim_789"}, nil
		})

	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), true).Return(nil)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCompleted, outcome.Status)
	assert.True(t, outcome.Simulated)
	assert.Equal(t, "pi_sim_789", outcome.ProcessorRef)
}

func TestSubmitDonationBankSimulationDeclined(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "50.00")
	instrument := bankInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Animal Shelter", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateBankPayment(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "missing_mandate", Message: "No mandate on file"})
	paymentGW.EXPECT().CreateBankCharge(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "invalid_source", Message: "Invalid source"})
	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: "requires_payment_method", ProcessorRef: "pi_sim_790"}, nil)

	// A declined simulation lands in the failed branch like any other payment
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusFailed, gomock.Any(), gomock.Nil(), true).Return(nil)
	eventGW.EXPECT().PublishDonationFailed(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusFailed, outcome.Status)
	assert.True(t, outcome.Simulated)
}

func TestSubmitDonationBankSimulationErrorSynthesizesResult(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "50.00")
	instrument := bankInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Animal Shelter", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateBankPayment(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "missing_mandate", Message: "No mandate on file"})
	paymentGW.EXPECT().CreateBankCharge(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "invalid_source", Message: "Invalid source"})
	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(nil, &models.ProcessorError{Code: "processing_error", Message: "Try again later"})

	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), true).Return(nil)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCompleted, outcome.Status)
	assert.True(t, outcome.Simulated)
	assert.True(t, strings.HasPrefix(outcome.ProcessorRef, "sim_bank_"))
}

func TestSubmitDonationBankProcessing(t *testing.T) {
	svc, repo, paymentGW, _, _ := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "15.00")
	instrument := bankInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Food Bank", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateBankPayment(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ProcessorStatusProcessing, ProcessorRef: "pi_789"}, nil)

	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusProcessing, gomock.Any(), gomock.Nil(), false).Return(nil)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.DonationTransaction) error {
			assert.Equal(t, models.DonationStatusProcessing, txn.Status)
			assert.Nil(t, txn.ProcessedAt)
			return nil
		})

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusProcessing, outcome.Status)
	assert.Contains(t, outcome.Message, "processing")
}

func TestSubmitDonationTimeoutLeavesPending(t *testing.T) {
	svc, repo, paymentGW, _, _ := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "20.00")
	instrument := cardInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Food Bank", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)

	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	// No status update: the charge may still land and the webhook
	// reconciler owns the outcome
	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusPending, outcome.Status)
	assert.Contains(t, outcome.Message, "awaiting processor confirmation")
}

func TestSubmitDonationVersionConflictRetries(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	req := directRequest(userID, "25.00")
	instrument := cardInstrument(userID)

	repo.EXPECT().GetCharityName(gomock.Any(), req.CharityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)

	var donationID uuid.UUID
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Donation) error {
			donationID = d.ID
			return nil
		})

	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "pi_123"}, nil)

	// First write loses the version race; the re-read shows the donation
	// still pending at a newer version and the retry lands
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).
		Return(donations.ErrVersionConflict)
	repo.EXPECT().GetDonationByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Donation, error) {
			return &models.Donation{
				ID:      id,
				UserID:  userID,
				Status:  models.DonationStatusPending,
				Amount:  req.Amount,
				Version: 2,
			}, nil
		})
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(2),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).Return(nil)

	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitDonation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DonationStatusCompleted, outcome.Status)
	assert.Equal(t, donationID, outcome.DonationID)
}
