package repository

import (
	"context"
	"fmt"

	"github.com/sparechange/roundup/internal/pkg/models"
)

// HasProcessedWebhookEvent reports whether a delivery was already processed
func (r *DonationRepository) HasProcessedWebhookEvent(ctx context.Context, source, externalEventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM webhook_events
			WHERE source = $1 AND external_event_id = $2 AND processed = true
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, source, externalEventID); err != nil {
		return false, fmt.Errorf("failed to check webhook event: %w", err)
	}
	return exists, nil
}

// RecordWebhookEvent stores the durability record for a delivery. Conflicts
// on (source, external_event_id) are redeliveries racing each other; first
// writer wins.
func (r *DonationRepository) RecordWebhookEvent(ctx context.Context, event *models.WebhookEvent) error {
	query := `
		INSERT INTO webhook_events (
			id, source, external_event_id, type, payload, processed, note,
			received_at, processed_at
		) VALUES (
			:id, :source, :external_event_id, :type, :payload, :processed, :note,
			:received_at, :processed_at
		)
		ON CONFLICT (source, external_event_id) DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to record webhook event: %w", err)
	}
	return nil
}
