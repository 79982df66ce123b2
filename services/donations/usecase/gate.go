package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
)

// Rejection reasons returned by the preference gate
const (
	RejectDisabled             = "DISABLED"
	RejectBelowThreshold       = "BELOW_THRESHOLD"
	RejectMonthlyLimitExceeded = "MONTHLY_LIMIT_EXCEEDED"
)

// Admission is the preference gate's verdict on a proposed round-up
type Admission struct {
	OK     bool
	Reason string
}

// EvaluateRoundUp checks a proposed round-up against the user's auto-donation
// preferences and their month-to-date completed total. The monthly limit is
// boundary inclusive: landing exactly on the limit admits. Pure given its
// inputs; the caller owns the consistency of monthToDate at call time.
func EvaluateRoundUp(roundUp decimal.Decimal, prefs *models.DonationPreferences, monthToDate decimal.Decimal) Admission {
	if !prefs.AutoRoundUp {
		return Admission{Reason: RejectDisabled}
	}
	if roundUp.LessThan(prefs.RoundUpThreshold) {
		return Admission{Reason: RejectBelowThreshold}
	}
	if monthToDate.Add(roundUp).GreaterThan(prefs.MonthlyDonationLimit) {
		return Admission{Reason: RejectMonthlyLimitExceeded}
	}
	return Admission{OK: true}
}
