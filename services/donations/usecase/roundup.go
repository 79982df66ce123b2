package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// currencyScale is the number of decimal places for currency amounts
const currencyScale = 2

// RoundUp computes the gap between a purchase amount and the next whole
// currency unit, rounded to currency scale. Amounts already at a whole unit
// round up to zero.
func RoundUp(amount decimal.Decimal) decimal.Decimal {
	return amount.Ceil().Sub(amount).Round(currencyScale)
}

// Summarize aggregates a batch of purchase amounts into totals and the
// average round-up. An empty batch is a caller error, never a silent zero.
func Summarize(amounts []decimal.Decimal) (*models.RoundUpSummary, error) {
	if len(amounts) == 0 {
		return nil, donations.ErrEmptyBatch
	}

	totalSpent := decimal.Zero
	totalRoundUp := decimal.Zero
	for _, amount := range amounts {
		totalSpent = totalSpent.Add(amount)
		totalRoundUp = totalRoundUp.Add(RoundUp(amount))
	}

	count := int64(len(amounts))
	return &models.RoundUpSummary{
		TotalSpent:     totalSpent,
		TotalRoundUp:   totalRoundUp,
		Count:          len(amounts),
		AverageRoundUp: totalRoundUp.DivRound(decimal.NewFromInt(count), currencyScale),
	}, nil
}
