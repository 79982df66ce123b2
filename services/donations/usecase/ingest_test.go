package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedTxn(id, merchant, amount string) models.ExternalTransaction {
	return models.ExternalTransaction{
		ExternalID:   id,
		Amount:       decimal.RequireFromString(amount),
		MerchantName: merchant,
		Date:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Category:     "Food and Drink",
	}
}

func ingestPrefs(charityID uuid.UUID, threshold, limit string) *models.DonationPreferences {
	return &models.DonationPreferences{
		UserID:               uuid.New(),
		DefaultCharityID:     charityID,
		AutoRoundUp:          true,
		RoundUpThreshold:     decimal.RequireFromString(threshold),
		MonthlyDonationLimit: decimal.RequireFromString(limit),
	}
}

func TestIngestTransactionsHappyPath(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	charityID := uuid.New()
	prefs := ingestPrefs(charityID, "0.10", "25.00")
	instrument := cardInstrument(userID)

	txns := []models.ExternalTransaction{
		feedTxn("txn_1", "Coffee Shop", "4.35"),
	}

	repo.EXPECT().GetCharityName(gomock.Any(), charityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetMonthToDateTotal(gomock.Any(), userID, gomock.Any()).
		Return(decimal.Zero, nil)
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_1").Return(false, nil)

	var pending *models.DonationTransaction
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.DonationTransaction) error {
			pending = txn
			assert.Equal(t, models.DonationStatusPending, txn.Status)
			require.NotNil(t, txn.ExternalTxnID)
			assert.Equal(t, "txn_1", *txn.ExternalTxnID)
			assert.True(t, txn.RoundUpAmount.Equal(decimal.RequireFromString("0.65")))
			assert.True(t, txn.TotalAmount.Equal(decimal.RequireFromString("0.65")))
			assert.Equal(t, "Round-up from Coffee Shop", txn.Description)
			return nil
		})

	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Donation) error {
			assert.Equal(t, models.DonationKindRoundUp, d.Kind)
			assert.True(t, d.Amount.Equal(decimal.RequireFromString("0.65")))
			return nil
		})
	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "pi_1"}, nil)
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).Return(nil)
	repo.EXPECT().UpdateTransactionStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	processed, err := svc.IngestTransactions(context.Background(), userID, txns, prefs)
	require.NoError(t, err)
	require.Len(t, processed, 1)
	assert.Equal(t, models.DonationStatusCompleted, processed[0].Status)
	assert.Equal(t, pending.ID, processed[0].ID)
}

func TestIngestTransactionsSkipsDuplicatesAndWholeAmounts(t *testing.T) {
	svc, repo, _, _, _ := newTestService(t)
	userID := uuid.New()
	charityID := uuid.New()
	prefs := ingestPrefs(charityID, "0.10", "25.00")
	instrument := cardInstrument(userID)

	txns := []models.ExternalTransaction{
		feedTxn("txn_dup", "Grocery", "7.25"),
		feedTxn("txn_whole", "Subscription", "10.00"),
		feedTxn("txn_refund", "Refund", "-3.50"),
	}

	repo.EXPECT().GetCharityName(gomock.Any(), charityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetMonthToDateTotal(gomock.Any(), userID, gomock.Any()).
		Return(decimal.Zero, nil)
	// Only the duplicate reaches the dedup check; whole amounts and
	// refunds are filtered before it
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_dup").Return(true, nil)

	processed, err := svc.IngestTransactions(context.Background(), userID, txns, prefs)
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestIngestTransactionsRunningMonthlyCap(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	charityID := uuid.New()
	// Limit leaves room for exactly one 0.65 round-up
	prefs := ingestPrefs(charityID, "0.10", "25.00")
	instrument := cardInstrument(userID)

	txns := []models.ExternalTransaction{
		feedTxn("txn_1", "Coffee Shop", "4.35"),
		feedTxn("txn_2", "Bookstore", "12.35"),
	}

	repo.EXPECT().GetCharityName(gomock.Any(), charityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetMonthToDateTotal(gomock.Any(), userID, gomock.Any()).
		Return(decimal.RequireFromString("24.00"), nil)
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_1").Return(false, nil)
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_2").Return(false, nil)

	// Only txn_1 is admitted: 24.00 + 0.65 = 24.65 fits, the running
	// total then rejects txn_2's 0.65 because 24.65 + 0.65 > 25.00
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "pi_1"}, nil)
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).Return(nil)
	repo.EXPECT().UpdateTransactionStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	processed, err := svc.IngestTransactions(context.Background(), userID, txns, prefs)
	require.NoError(t, err)
	assert.Len(t, processed, 1)
}

func TestIngestTransactionsAbsorbsInsertRace(t *testing.T) {
	svc, repo, paymentGW, _, eventGW := newTestService(t)
	userID := uuid.New()
	charityID := uuid.New()
	prefs := ingestPrefs(charityID, "0.10", "25.00")
	instrument := cardInstrument(userID)

	txns := []models.ExternalTransaction{
		feedTxn("txn_raced", "Coffee Shop", "4.35"),
		feedTxn("txn_second", "Bookstore", "12.35"),
	}

	repo.EXPECT().GetCharityName(gomock.Any(), charityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetMonthToDateTotal(gomock.Any(), userID, gomock.Any()).
		Return(decimal.Zero, nil)
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_raced").Return(false, nil)
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_second").Return(false, nil)

	// A concurrent sweep wins the insert for txn_raced between the dedup
	// check and our insert; the conflict is absorbed and the batch goes on
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, txn *models.DonationTransaction) error {
			if *txn.ExternalTxnID == "txn_raced" {
				return donations.ErrDuplicateTransaction
			}
			return nil
		})

	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).Return("cus_123", nil)
	repo.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	paymentGW.EXPECT().CreateCardPayment(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ProcessorStatusSucceeded, ProcessorRef: "pi_2"}, nil)
	repo.EXPECT().UpdateDonationStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any(), false).Return(nil)
	repo.EXPECT().UpdateTransactionStatus(gomock.Any(), gomock.Any(), int64(1),
		models.DonationStatusCompleted, gomock.Any(), gomock.Any()).Return(nil)
	eventGW.EXPECT().PublishDonationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	processed, err := svc.IngestTransactions(context.Background(), userID, txns, prefs)
	require.NoError(t, err)
	require.Len(t, processed, 1)
	assert.Equal(t, "txn_second", *processed[0].ExternalTxnID)
}

func TestIngestTransactionsSubmitFailureSkipsItem(t *testing.T) {
	svc, repo, _, _, _ := newTestService(t)
	userID := uuid.New()
	charityID := uuid.New()
	prefs := ingestPrefs(charityID, "0.10", "25.00")
	instrument := cardInstrument(userID)

	txns := []models.ExternalTransaction{
		feedTxn("txn_broken", "Coffee Shop", "4.35"),
	}

	repo.EXPECT().GetCharityName(gomock.Any(), charityID).Return("Ocean Cleanup", nil)
	repo.EXPECT().GetActiveInstruments(gomock.Any(), userID).
		Return([]models.FundingInstrument{*instrument}, nil)
	repo.EXPECT().GetMonthToDateTotal(gomock.Any(), userID, gomock.Any()).
		Return(decimal.Zero, nil)
	repo.EXPECT().TransactionExistsByExternalID(gomock.Any(), "txn_broken").Return(false, nil)
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().GetCustomerRef(gomock.Any(), userID).
		Return("", donations.ErrCustomerRefMissing)

	// The pending record stays for reconciliation; the batch itself succeeds
	processed, err := svc.IngestTransactions(context.Background(), userID, txns, prefs)
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestRunRoundUpSweepSkipsWhenDisabled(t *testing.T) {
	svc, repo, _, _, _ := newTestService(t)
	userID := uuid.New()

	repo.EXPECT().GetPreferences(gomock.Any(), userID).
		Return(&models.DonationPreferences{UserID: userID, AutoRoundUp: false}, nil)

	err := svc.RunRoundUpSweep(context.Background(), userID)
	assert.NoError(t, err)
}

func TestRunRoundUpSweepNoPreferences(t *testing.T) {
	svc, repo, _, _, _ := newTestService(t)
	userID := uuid.New()

	repo.EXPECT().GetPreferences(gomock.Any(), userID).
		Return(nil, donations.ErrPreferencesNotFound)

	err := svc.RunRoundUpSweep(context.Background(), userID)
	assert.NoError(t, err)
}

func TestRunRoundUpSweepFetchesAndMarksSynced(t *testing.T) {
	svc, repo, _, feedGW, _ := newTestService(t)
	userID := uuid.New()
	charityID := uuid.New()
	lastSynced := time.Now().UTC().Add(-2 * time.Hour)

	repo.EXPECT().GetPreferences(gomock.Any(), userID).
		Return(ingestPrefs(charityID, "0.10", "25.00"), nil)
	repo.EXPECT().GetFeedItemByUserID(gomock.Any(), userID).
		Return(&models.FeedItem{ItemID: "item_1", UserID: userID.String(), AccessToken: "access-token", LastSynced: &lastSynced}, nil)
	feedGW.EXPECT().FetchTransactions(gomock.Any(), "access-token", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, start, end time.Time) ([]models.ExternalTransaction, error) {
			// Window starts at the sync watermark, not the full lookback
			assert.WithinDuration(t, lastSynced, start, time.Second)
			return nil, nil
		})
	repo.EXPECT().MarkFeedItemSynced(gomock.Any(), "item_1", gomock.Any()).Return(nil)

	err := svc.RunRoundUpSweep(context.Background(), userID)
	assert.NoError(t, err)
}

func TestGetRoundUpOpportunities(t *testing.T) {
	svc, repo, _, feedGW, _ := newTestService(t)
	userID := uuid.New()

	repo.EXPECT().GetFeedItemByUserID(gomock.Any(), userID).
		Return(&models.FeedItem{ItemID: "item_1", UserID: userID.String(), AccessToken: "access-token"}, nil)
	feedGW.EXPECT().FetchTransactions(gomock.Any(), "access-token", gomock.Any(), gomock.Any()).
		Return([]models.ExternalTransaction{
			feedTxn("txn_1", "Coffee Shop", "4.35"),
			feedTxn("txn_2", "Subscription", "10.00"),
		}, nil)

	opportunities, summary, err := svc.GetRoundUpOpportunities(context.Background(), userID)
	require.NoError(t, err)
	// Whole amounts produce no opportunity
	require.Len(t, opportunities, 1)
	assert.Equal(t, "txn_1", opportunities[0].ExternalTxnID)
	assert.True(t, opportunities[0].RoundUpAmount.Equal(decimal.RequireFromString("0.65")))
	assert.Equal(t, 1, summary.Count)
	assert.True(t, summary.TotalRoundUp.Equal(decimal.RequireFromString("0.65")))
}
