package utils

import (
	"time"

	"equipledger-backend/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	// DepreciationFloorRatio is the fraction of the purchase price a tool
	// never depreciates below.
	DepreciationFloorRatio = 0.1

	daysPerYear  = 365.25
	hoursPerYear = daysPerYear * 24
)

// CalculateDepreciation computes straight-line depreciation for a tool as
// of the given instant. It is pure: the tool is not modified.
//
// Years owned are not clamped at zero, so a future purchase date yields a
// negative figure and a current value above the purchase price. The floor
// still bounds the value from below.
func CalculateDepreciation(t *domain.Tool, now time.Time) domain.DepreciationReport {
	yearsOwned := now.Sub(t.PurchaseDate).Hours() / hoursPerYear
	annual := t.PurchasePrice * t.DepreciationRate / 100

	current := t.PurchasePrice - annual*yearsOwned
	if floor := t.PurchasePrice * DepreciationFloorRatio; current < floor {
		current = floor
	}

	original := Round2(t.PurchasePrice)
	current = Round2(current)
	return domain.DepreciationReport{
		OriginalValue:      original,
		CurrentValue:       current,
		DepreciatedAmount:  Round2(original - current),
		YearsOwned:         Round1(yearsOwned),
		AnnualDepreciation: Round2(annual),
		DepreciationRate:   t.DepreciationRate,
	}
}

// SessionHours converts a usage interval to hours rounded to one decimal
// place, the granularity usage sessions are accounted in.
func SessionHours(start, end time.Time) float64 {
	return Round1(end.Sub(start).Hours())
}

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round1 rounds to 1 decimal place.
func Round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
