package models

import (
	"time"

	"github.com/google/uuid"
)

// Webhook event sources
const (
	WebhookSourceStripe = "stripe"
	WebhookSourcePlaid  = "plaid"
)

// Processor webhook event types
const (
	EventPaymentSucceeded  = "payment_intent.succeeded"
	EventPaymentFailed     = "payment_intent.payment_failed"
	EventPaymentProcessing = "payment_intent.processing"
)

// WebhookEvent is the durability record for a received webhook delivery.
// (source, external_event_id) is unique among processed records, which makes
// at-least-once redelivery idempotent.
type WebhookEvent struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Source          string     `json:"source" db:"source"`
	ExternalEventID string     `json:"external_event_id" db:"external_event_id"`
	Type            string     `json:"type" db:"type"`
	Payload         string     `json:"payload" db:"payload"`
	Processed       bool       `json:"processed" db:"processed"`
	Note            string     `json:"note" db:"note"`
	ReceivedAt      time.Time  `json:"received_at" db:"received_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty" db:"processed_at"`
}

// ProcessorEvent is the normalized form of an asynchronous processor status
// push, handed to the webhook reconciler
type ProcessorEvent struct {
	Source          string `json:"source"`
	ExternalEventID string `json:"external_event_id"`
	Type            string `json:"type"`
	ProcessorRef    string `json:"processor_ref"`
	Status          string `json:"status"`
}

// FeedWebhookRequest is the transaction feed's webhook payload
type FeedWebhookRequest struct {
	WebhookType string `json:"webhook_type"`
	WebhookCode string `json:"webhook_code"`
	ItemID      string `json:"item_id"`
}
