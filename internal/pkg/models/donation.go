package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donation statuses. Completed and failed are terminal; no transition
// leaves either of them.
const (
	DonationStatusPending    = "pending"
	DonationStatusProcessing = "processing"
	DonationStatusCompleted  = "completed"
	DonationStatusFailed     = "failed"
)

// Donation kinds
const (
	DonationKindDirect  = "direct"
	DonationKindRoundUp = "roundup"
)

// IsTerminalStatus reports whether a donation status permits no further transitions
func IsTerminalStatus(status string) bool {
	return status == DonationStatusCompleted || status == DonationStatusFailed
}

// DonationRequest is the ephemeral input to the donation lifecycle engine
type DonationRequest struct {
	UserID       uuid.UUID       `json:"user_id"`
	CharityID    uuid.UUID       `json:"charity_id"`
	Amount       decimal.Decimal `json:"amount"`
	Kind         string          `json:"kind"`
	InstrumentID *uuid.UUID      `json:"instrument_id,omitempty"`
}

// Donation is the persisted record of a funding attempt
type Donation struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	CharityID    uuid.UUID       `json:"charity_id" db:"charity_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	InstrumentID uuid.UUID       `json:"instrument_id" db:"instrument_id"`
	Kind         string          `json:"kind" db:"kind"`
	Status       string          `json:"status" db:"status"`
	ProcessorRef *string         `json:"processor_ref,omitempty" db:"processor_ref"`
	Simulated    bool            `json:"simulated" db:"simulated"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	Version      int64           `json:"version" db:"version"`
}

// DonationOutcome is what the caller (UI/notification layer) gets back from submit
type DonationOutcome struct {
	Status            string          `json:"status"`
	DonationID        uuid.UUID       `json:"donation_id"`
	TransactionID     *uuid.UUID      `json:"transaction_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	CharityName       string          `json:"charity_name"`
	InstrumentDisplay string          `json:"instrument_display"`
	ProcessorRef      string          `json:"processor_ref,omitempty"`
	Message           string          `json:"message"`
	Simulated         bool            `json:"simulated,omitempty"`
}

// DonationEvent is published on NATS when a donation reaches a terminal state
type DonationEvent struct {
	DonationID uuid.UUID       `json:"donation_id"`
	UserID     uuid.UUID       `json:"user_id"`
	CharityID  uuid.UUID       `json:"charity_id"`
	Amount     decimal.Decimal `json:"amount"`
	Kind       string          `json:"kind"`
	Status     string          `json:"status"`
	Timestamp  time.Time       `json:"timestamp"`
}
