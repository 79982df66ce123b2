package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/logger"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// defaultFeedLookbackDays bounds the first sweep for a feed item that has
// never synced, and the opportunity preview window
const defaultFeedLookbackDays = 30

func (s *DonationService) sweepLookback() time.Duration {
	hours := s.cfg.Donation.SweepLookbackHours
	if hours <= 0 {
		hours = defaultFeedLookbackDays * 24
	}
	return time.Duration(hours) * time.Hour
}

func (s *DonationService) opportunityWindowDays() int {
	days := s.cfg.Donation.OpportunityDays
	if days <= 0 {
		days = defaultFeedLookbackDays
	}
	return days
}

// IngestTransactions turns a batch of purchase transactions into round-up
// donations. Each transaction is deduplicated on its external id, computed
// through the round-up calculator, admitted by the preference gate against a
// running month-to-date total and then pushed through the donation lifecycle
// engine. Returned transactions are the admitted ones in their final state;
// skips and per-item failures are logged and absorbed so one bad item never
// aborts the rest of the batch.
func (s *DonationService) IngestTransactions(ctx context.Context, userID uuid.UUID, txns []models.ExternalTransaction, prefs *models.DonationPreferences) ([]models.DonationTransaction, error) {
	if prefs == nil {
		return nil, donations.ErrPreferencesNotFound
	}
	if len(txns) == 0 {
		return nil, nil
	}

	charityName, err := s.repo.GetCharityName(ctx, prefs.DefaultCharityID)
	if err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			return nil, donations.ErrCharityNotFound
		}
		return nil, fmt.Errorf("failed to get charity: %w", err)
	}

	instrument, err := s.ResolveInstrument(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	monthToDate, err := s.repo.GetMonthToDateTotal(ctx, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get month-to-date total: %w", err)
	}

	processed := make([]models.DonationTransaction, 0, len(txns))
	for i := range txns {
		txn := &txns[i]

		// Feed inflows (refunds, credits) carry non-positive amounts
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		roundUp := RoundUp(txn.Amount)
		if roundUp.IsZero() {
			continue
		}

		exists, err := s.repo.TransactionExistsByExternalID(ctx, txn.ExternalID)
		if err != nil {
			logger.Error("Failed to check transaction dedup, skipping item",
				logger.String("external_txn_id", txn.ExternalID),
				logger.Err(err))
			continue
		}
		if exists {
			logger.Debug("Skipping already ingested transaction",
				logger.String("external_txn_id", txn.ExternalID))
			continue
		}

		admission := EvaluateRoundUp(roundUp, prefs, monthToDate)
		if !admission.OK {
			// A smaller round-up later in the batch may still fit under
			// the monthly limit, so rejection never short-circuits
			logger.Debug("Round-up rejected by preference gate",
				logger.String("external_txn_id", txn.ExternalID),
				logger.String("reason", admission.Reason))
			continue
		}

		pending, err := s.createPendingRoundUp(ctx, userID, prefs.DefaultCharityID, txn, roundUp)
		if err != nil {
			if errors.Is(err, donations.ErrDuplicateTransaction) {
				// A concurrent sweep for the same user won the insert race;
				// same outcome as the dedup check above
				logger.Debug("Transaction ingested by a concurrent sweep",
					logger.String("external_txn_id", txn.ExternalID))
			} else {
				logger.Error("Failed to create round-up transaction, skipping item",
					logger.String("external_txn_id", txn.ExternalID),
					logger.Err(err))
			}
			continue
		}

		req := &models.DonationRequest{
			UserID:    userID,
			CharityID: prefs.DefaultCharityID,
			Amount:    roundUp,
			Kind:      models.DonationKindRoundUp,
		}
		outcome, err := s.submit(ctx, req, instrument, charityName, pending)
		if err != nil {
			// The pending record stays for later reconciliation; one broken
			// item never aborts the rest of the batch
			logger.Error("Round-up submission failed, leaving transaction pending",
				logger.String("external_txn_id", txn.ExternalID),
				logger.Err(err))
			monthToDate = monthToDate.Add(roundUp)
			continue
		}

		logger.Info("Round-up donation processed",
			logger.String("external_txn_id", txn.ExternalID),
			logger.String("donation_id", outcome.DonationID.String()),
			logger.String("status", outcome.Status))

		// The running total counts every admitted round-up, completed or
		// not, so a batch of slow bank payments cannot overshoot the limit
		monthToDate = monthToDate.Add(roundUp)
		processed = append(processed, *pending)
	}

	return processed, nil
}

// createPendingRoundUp records the round-up transaction before any processor
// call. ExternalTxnID lands here first, which makes the dedup check above
// safe against a crash between persistence and submission.
func (s *DonationService) createPendingRoundUp(ctx context.Context, userID, charityID uuid.UUID, ext *models.ExternalTransaction, roundUp decimal.Decimal) (*models.DonationTransaction, error) {
	now := s.now()
	pending := &models.DonationTransaction{
		ID:              uuid.New(),
		UserID:          userID,
		CharityID:       charityID,
		ExternalTxnID:   &ext.ExternalID,
		OriginalAmount:  ext.Amount,
		RoundUpAmount:   roundUp,
		TotalAmount:     roundUp,
		Status:          models.DonationStatusPending,
		Description:     fmt.Sprintf("Round-up from %s", ext.MerchantName),
		TransactionDate: ext.Date,
		CreatedAt:       now,
		Version:         1,
	}
	if err := s.repo.CreateTransaction(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to create round-up transaction: %w", err)
	}
	return pending, nil
}

// RunRoundUpSweep pulls fresh purchases from the user's transaction feed and
// ingests them. Triggered by feed webhooks and the scheduled sweep; a user
// without auto round-up enabled is a quiet no-op so feed noise never errors.
func (s *DonationService) RunRoundUpSweep(ctx context.Context, userID uuid.UUID) error {
	prefs, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, donations.ErrPreferencesNotFound) {
			logger.Debug("Sweep skipped, no donation preferences",
				logger.String("user_id", userID.String()))
			return nil
		}
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	if !prefs.AutoRoundUp {
		logger.Debug("Sweep skipped, auto round-up disabled",
			logger.String("user_id", userID.String()))
		return nil
	}

	item, err := s.repo.GetFeedItemByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, donations.ErrNoFeedItem) {
			logger.Debug("Sweep skipped, no linked transaction feed",
				logger.String("user_id", userID.String()))
			return nil
		}
		return fmt.Errorf("failed to get feed item: %w", err)
	}

	now := s.now()
	start := now.Add(-s.sweepLookback())
	if item.LastSynced != nil && item.LastSynced.After(start) {
		start = *item.LastSynced
	}

	txns, err := s.feedGW.FetchTransactions(ctx, item.AccessToken, start, now)
	if err != nil {
		return fmt.Errorf("failed to fetch feed transactions: %w", err)
	}

	if _, err := s.IngestTransactions(ctx, userID, txns, prefs); err != nil {
		return err
	}

	if err := s.repo.MarkFeedItemSynced(ctx, item.ItemID, now); err != nil {
		// Worst case the next sweep re-reads a window the dedup check absorbs
		logger.Warn("Failed to mark feed item synced",
			logger.String("item_id", item.ItemID),
			logger.Err(err))
	}

	logger.Info("Round-up sweep finished",
		logger.String("user_id", userID.String()),
		logger.Int("fetched", len(txns)))
	return nil
}

// GetRoundUpOpportunities previews the round-ups the current feed window
// would produce, without creating anything
func (s *DonationService) GetRoundUpOpportunities(ctx context.Context, userID uuid.UUID) ([]models.RoundUpOpportunity, *models.RoundUpSummary, error) {
	item, err := s.repo.GetFeedItemByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	txns, err := s.feedGW.FetchTransactions(ctx, item.AccessToken, now.AddDate(0, 0, -s.opportunityWindowDays()), now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch feed transactions: %w", err)
	}

	opportunities := make([]models.RoundUpOpportunity, 0, len(txns))
	amounts := make([]decimal.Decimal, 0, len(txns))
	for _, txn := range txns {
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		roundUp := RoundUp(txn.Amount)
		if roundUp.IsZero() {
			continue
		}
		opportunities = append(opportunities, models.RoundUpOpportunity{
			ExternalTxnID: txn.ExternalID,
			MerchantName:  txn.MerchantName,
			Amount:        txn.Amount,
			RoundUpAmount: roundUp,
			Date:          txn.Date,
			Category:      txn.Category,
		})
		amounts = append(amounts, txn.Amount)
	}

	if len(amounts) == 0 {
		return opportunities, &models.RoundUpSummary{}, nil
	}

	summary, err := Summarize(amounts)
	if err != nil {
		return nil, nil, err
	}
	return opportunities, summary, nil
}
