// Package calc derives campaign performance figures from raw totals. All
// functions are total: a zero denominator yields 0 rather than an error, and
// percentages are rounded to two decimal places.
package calc

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// DefaultConversionValue is the revenue attributed to one conversion.
	DefaultConversionValue = 50.0

	// DefaultAlertThreshold is the budget usage percentage at which a
	// campaign is flagged.
	DefaultAlertThreshold = 80.0
)

// Round2 rounds v to two decimal places. The exact binary value of v is
// rounded, so 1.005 (stored just below the half) becomes 1, and exact halves
// go to the even neighbour: 0.125 becomes 0.12.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return exact(v).RoundBank(2).InexactFloat64()
}

// exact returns the decimal expansion of v without any rounding.
// v = m * 2^e and, for e < 0, m * 2^e = m * 5^-e * 10^e.
func exact(v float64) decimal.Decimal {
	frac, e := math.Frexp(v)
	m := big.NewInt(int64(frac * (1 << 53)))
	e -= 53
	if e >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e)), 0)
	}
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e)), nil)
	return decimal.NewFromBigInt(pow.Mul(pow, m), int32(e))
}

// ROI returns the return on investment as a percentage. Negative values mean
// a net loss. Zero spend means there is no signal yet and yields 0.
func ROI(conversions int64, spend, conversionValue float64) float64 {
	if spend == 0 {
		return 0
	}
	revenue := float64(conversions) * conversionValue
	return Round2((revenue - spend) / spend * 100)
}

// BudgetUsage returns the share of budget already spent as a percentage.
// The result is not clamped, so overspent campaigns exceed 100.
func BudgetUsage(budget, spend float64) float64 {
	if budget == 0 {
		return 0
	}
	return Round2(spend / budget * 100)
}

// BudgetAlert reports whether budget usage reached threshold (inclusive).
func BudgetAlert(budget, spend, threshold float64) bool {
	return BudgetUsage(budget, spend) >= threshold
}

// CTR returns the click-through rate as a percentage.
func CTR(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return Round2(float64(clicks) / float64(impressions) * 100)
}

// ConversionRate returns conversions per click as a percentage.
func ConversionRate(conversions, clicks int64) float64 {
	if clicks == 0 {
		return 0
	}
	return Round2(float64(conversions) / float64(clicks) * 100)
}
