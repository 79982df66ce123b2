package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sparechange/roundup/internal/pkg/logger"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// ApplyProcessorEvent reconciles an asynchronous processor status push with
// the stored donation state. Redeliveries are absorbed by the event log,
// unmatched events are recorded and acknowledged so the processor stops
// retrying, and terminal donations are never moved.
func (s *DonationService) ApplyProcessorEvent(ctx context.Context, event *models.ProcessorEvent) error {
	if event.ExternalEventID != "" {
		seen, err := s.repo.HasProcessedWebhookEvent(ctx, event.Source, event.ExternalEventID)
		if err != nil {
			return fmt.Errorf("failed to check webhook event log: %w", err)
		}
		if seen {
			logger.Debug("Skipping already processed webhook event",
				logger.String("external_event_id", event.ExternalEventID))
			return nil
		}
	}

	targetStatus, known := statusForEventType(event.Type)
	if !known {
		return s.recordEvent(ctx, event, fmt.Sprintf("unhandled event type %s", event.Type))
	}

	donation, err := s.repo.GetDonationByProcessorRef(ctx, event.ProcessorRef)
	if err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			// Acknowledge so the processor stops redelivering; the event
			// stays in the log for manual reconciliation
			logger.Warn("Webhook event matched no donation",
				logger.String("processor_ref", event.ProcessorRef),
				logger.String("type", event.Type))
			return s.recordEvent(ctx, event, "no matching donation")
		}
		return fmt.Errorf("failed to look up donation by processor ref: %w", err)
	}

	if models.IsTerminalStatus(donation.Status) {
		return s.recordEvent(ctx, event, fmt.Sprintf("donation already %s", donation.Status))
	}
	if donation.Status == targetStatus {
		return s.recordEvent(ctx, event, "status already applied")
	}

	ref := event.ProcessorRef

	switch targetStatus {
	case models.DonationStatusCompleted:
		now := s.now()
		if err := s.updateDonationStatus(ctx, donation, targetStatus, &ref, &now, false); err != nil {
			return err
		}
		if err := s.reconcileTransaction(ctx, event.ProcessorRef, targetStatus, &now); err != nil {
			return err
		}
	default:
		if err := s.updateDonationStatus(ctx, donation, targetStatus, &ref, nil, false); err != nil {
			return err
		}
		if err := s.reconcileTransaction(ctx, event.ProcessorRef, targetStatus, nil); err != nil {
			return err
		}
	}

	if models.IsTerminalStatus(donation.Status) {
		s.publishLifecycleEvent(ctx, donation, donation.Status)
	}

	logger.Info("Processor event applied",
		logger.String("donation_id", donation.ID.String()),
		logger.String("type", event.Type),
		logger.String("status", donation.Status))

	return s.recordEvent(ctx, event, "")
}

// reconcileTransaction advances the transaction sharing the donation's
// processor ref. A timed-out submission may never have attached one; that is
// not an error.
func (s *DonationService) reconcileTransaction(ctx context.Context, processorRef, status string, processedAt *time.Time) error {
	txn, err := s.repo.GetTransactionByProcessorRef(ctx, processorRef)
	if err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up transaction by processor ref: %w", err)
	}
	if models.IsTerminalStatus(txn.Status) || txn.Status == status {
		return nil
	}
	return s.updateTransactionStatus(ctx, txn, status, &processorRef, processedAt)
}

func statusForEventType(eventType string) (string, bool) {
	switch eventType {
	case models.EventPaymentSucceeded:
		return models.DonationStatusCompleted, true
	case models.EventPaymentFailed:
		return models.DonationStatusFailed, true
	case models.EventPaymentProcessing:
		return models.DonationStatusProcessing, true
	default:
		return "", false
	}
}

// recordEvent writes the processed marker for a delivery. Losing the marker
// only costs one redundant reconciliation on redelivery, so failures are
// logged rather than bubbled into a processor-facing 5xx.
func (s *DonationService) recordEvent(ctx context.Context, event *models.ProcessorEvent, note string) error {
	payload, _ := json.Marshal(event)
	now := s.now()
	record := &models.WebhookEvent{
		ID:              uuid.New(),
		Source:          event.Source,
		ExternalEventID: event.ExternalEventID,
		Type:            event.Type,
		Payload:         string(payload),
		Processed:       true,
		Note:            note,
		ReceivedAt:      now,
		ProcessedAt:     &now,
	}
	if err := s.repo.RecordWebhookEvent(ctx, record); err != nil {
		logger.Error("Failed to record webhook event",
			logger.String("external_event_id", event.ExternalEventID),
			logger.Err(err))
	}
	return nil
}

// HandleFeedWebhook reacts to transaction feed pushes. New-transactions
// notifications trigger a round-up sweep for the item's user; everything else
// is acknowledged and dropped.
func (s *DonationService) HandleFeedWebhook(ctx context.Context, req *models.FeedWebhookRequest) error {
	if req.WebhookType != "TRANSACTIONS" {
		logger.Debug("Ignoring feed webhook",
			logger.String("webhook_type", req.WebhookType),
			logger.String("webhook_code", req.WebhookCode))
		return nil
	}

	switch req.WebhookCode {
	case "DEFAULT_UPDATE", "SYNC_UPDATES_AVAILABLE", "INITIAL_UPDATE", "HISTORICAL_UPDATE":
	default:
		logger.Debug("Ignoring feed webhook code",
			logger.String("webhook_code", req.WebhookCode))
		return nil
	}

	item, err := s.repo.GetFeedItemByItemID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, donations.ErrNoFeedItem) {
			logger.Warn("Feed webhook for unknown item",
				logger.String("item_id", req.ItemID))
			return nil
		}
		return fmt.Errorf("failed to get feed item: %w", err)
	}

	userID, err := uuid.Parse(item.UserID)
	if err != nil {
		return fmt.Errorf("feed item %s carries malformed user id: %w", item.ItemID, err)
	}

	return s.RunRoundUpSweep(ctx, userID)
}
