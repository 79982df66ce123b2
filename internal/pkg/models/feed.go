package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExternalTransaction is a purchase transaction pulled from the external
// transaction feed. Positive amounts are outflows (purchases).
type ExternalTransaction struct {
	ExternalID   string          `json:"transaction_id"`
	Amount       decimal.Decimal `json:"amount"`
	MerchantName string          `json:"name"`
	Date         time.Time       `json:"date"`
	Category     string          `json:"category"`
}

// FeedItem links a feed access token to a user. The engine reads it to poll
// transactions; linking and token exchange happen outside this service.
type FeedItem struct {
	ItemID      string     `json:"item_id" db:"item_id"`
	UserID      string     `json:"user_id" db:"user_id"`
	AccessToken string     `json:"-" db:"access_token"`
	LastSynced  *time.Time `json:"last_synced,omitempty" db:"last_synced"`
}
