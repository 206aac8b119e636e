package loan

const (
	DefaultAnnualInterestRate = 10.0

	MaxAmountToAnnualIncome = 0.40
	MaxEmiToMonthlyIncome   = 0.30

	// Applications scoring below this are declined without review.
	AutoRejectScoreBelow = 500
	MinApprovalScore     = 600
)

// EmiWithinIncome reports whether emi fits inside the monthly share of annualIncome.
func EmiWithinIncome(emi, annualIncome float64) bool {
	return emi <= MaxEmiToMonthlyIncome*(annualIncome/12)
}

func AmountWithinIncome(amount, annualIncome float64) bool {
	return amount <= MaxAmountToAnnualIncome*annualIncome
}
