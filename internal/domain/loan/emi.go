package loan

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyInstallment is the amortizing EMI: P·r·(1+r)^n / ((1+r)^n − 1), r = annualRatePct/12/100.
func MonthlyInstallment(principal, annualRatePct float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRatePct / 12 / 100
	if r == 0 {
		return principal / float64(months)
	}
	f := math.Pow(1+r, float64(months))
	return principal * r * f / (f - 1)
}

// RoundMoney rounds half away from zero to 2 decimal places.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
