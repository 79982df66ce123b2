package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationTransaction is the funds-movement record created alongside a
// donation. For round-ups OriginalAmount carries the purchase amount and
// ExternalTxnID the feed transaction id used for dedup; direct donations
// carry a zero round-up and no external id.
type DonationTransaction struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	CharityID       uuid.UUID       `json:"charity_id" db:"charity_id"`
	DonationID      uuid.UUID       `json:"donation_id" db:"donation_id"`
	ExternalTxnID   *string         `json:"external_txn_id,omitempty" db:"external_txn_id"`
	OriginalAmount  decimal.Decimal `json:"original_amount" db:"original_amount"`
	RoundUpAmount   decimal.Decimal `json:"round_up_amount" db:"round_up_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status          string          `json:"status" db:"status"`
	Description     string          `json:"description" db:"description"`
	ProcessorRef    *string         `json:"processor_ref,omitempty" db:"processor_ref"`
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty" db:"processed_at"`
	Version         int64           `json:"version" db:"version"`
}

// RoundUpSummary aggregates a batch of purchase transactions
type RoundUpSummary struct {
	TotalSpent     decimal.Decimal `json:"total_spent"`
	TotalRoundUp   decimal.Decimal `json:"total_round_up"`
	Count          int             `json:"count"`
	AverageRoundUp decimal.Decimal `json:"average_round_up"`
}

// RoundUpOpportunity is a purchase transaction eligible for rounding up,
// surfaced to the UI before any donation is made
type RoundUpOpportunity struct {
	ExternalTxnID string          `json:"external_txn_id"`
	MerchantName  string          `json:"merchant_name"`
	Amount        decimal.Decimal `json:"amount"`
	RoundUpAmount decimal.Decimal `json:"round_up_amount"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
}
