package donations

import "errors"

// Resolution and validation errors surfaced to callers before any donation
// record is created
var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrCharityRequired      = errors.New("charity is required")
	ErrCharityNotFound      = errors.New("charity not found")
	ErrInstrumentNotFound   = errors.New("funding instrument not found")
	ErrInstrumentInactive   = errors.New("funding instrument is inactive")
	ErrNoFundingInstrument  = errors.New("no active funding instrument")
	ErrPreferencesNotFound  = errors.New("donation preferences not found")
	ErrInvalidDonationDay   = errors.New("donation day of month must be between 1 and 28")
	ErrNoFeedItem           = errors.New("no linked transaction feed for user")
	ErrDuplicateTransaction = errors.New("transaction already ingested")
	ErrEmptyBatch           = errors.New("transaction batch is empty")
	ErrVersionConflict      = errors.New("record version conflict")
	ErrNotFound             = errors.New("record not found")
	ErrCustomerRefMissing   = errors.New("user has no processor customer reference")
)
