package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Funding instrument kinds
const (
	InstrumentKindCard        = "card"
	InstrumentKindBankAccount = "bank_account"
)

// FundingInstrument represents a linked payment source (card or bank account).
// Within the donation engine instruments are read-only; default/active flags
// are mutated by explicit user actions elsewhere.
type FundingInstrument struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	UserID               uuid.UUID `json:"user_id" db:"user_id"`
	Kind                 string    `json:"kind" db:"kind"`
	ProcessorRef         string    `json:"processor_ref" db:"processor_ref"`
	LastFour             string    `json:"last_four" db:"last_four"`
	Brand                string    `json:"brand" db:"brand"`
	IsDefault            bool      `json:"is_default" db:"is_default"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	RequiresVerification bool      `json:"requires_verification" db:"requires_verification"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// Display returns the user-facing label for the instrument, e.g. "visa ****4242"
func (f *FundingInstrument) Display() string {
	return fmt.Sprintf("%s ****%s", f.Brand, f.LastFour)
}
