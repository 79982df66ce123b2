package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationPreferences is the per-user round-up configuration. One record per
// user; mutated only by explicit user updates.
type DonationPreferences struct {
	UserID               uuid.UUID       `json:"user_id" db:"user_id"`
	DefaultCharityID     uuid.UUID       `json:"default_charity_id" db:"default_charity_id"`
	AutoRoundUp          bool            `json:"auto_round_up" db:"auto_round_up"`
	RoundUpThreshold     decimal.Decimal `json:"round_up_threshold" db:"round_up_threshold"`
	MonthlyDonationLimit decimal.Decimal `json:"monthly_donation_limit" db:"monthly_donation_limit"`
	DonationDayOfMonth   int             `json:"donation_day_of_month" db:"donation_day_of_month"`
	NotifyOnDonation     bool            `json:"notify_on_donation" db:"notify_on_donation"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

// UpdatePreferencesRequest is the payload for preference updates
type UpdatePreferencesRequest struct {
	DefaultCharityID     uuid.UUID       `json:"default_charity_id"`
	AutoRoundUp          bool            `json:"auto_round_up"`
	RoundUpThreshold     decimal.Decimal `json:"round_up_threshold"`
	MonthlyDonationLimit decimal.Decimal `json:"monthly_donation_limit"`
	DonationDayOfMonth   int             `json:"donation_day_of_month"`
	NotifyOnDonation     bool            `json:"notify_on_donation"`
}
