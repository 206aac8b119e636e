// Package credit scores applicants from their declared finances and repayment history.
package credit

import (
	"math"

	"loan-origination-backend/internal/domain/loan"
)

const (
	MinScore = 300
	MaxScore = 900

	maxIncomePoints = 200
	historyBonus    = 50
	missedPenalty   = 50
	newBorrowerPts  = 20
)

// Score returns an integer in [MinScore, MaxScore]. Only CLOSED and ACTIVE loans in
// history are considered, so callers may pass an unfiltered slice.
func Score(annualIncome, monthlyExpenses float64, history []loan.Loan) int {
	score := float64(MinScore)

	score += math.Min(annualIncome/1000, maxIncomePoints)
	score += dtiPoints(DebtToIncome(annualIncome, monthlyExpenses))

	var seen, missed int
	for _, l := range history {
		if !l.Status.In(loan.HistoryStatuses...) {
			continue
		}
		seen++
		missed += l.MissedEmis
	}
	if seen > 0 {
		score += historyBonus
		score -= float64(missedPenalty * missed)
	} else {
		score += newBorrowerPts
	}

	score = math.Max(MinScore, math.Min(MaxScore, score))
	return int(math.Trunc(score))
}

// DebtToIncome is monthly expenses over monthly income; zero income is treated as the worst case.
func DebtToIncome(annualIncome, monthlyExpenses float64) float64 {
	monthly := annualIncome / 12
	if monthly <= 0 {
		return 1
	}
	return monthlyExpenses / monthly
}

func dtiPoints(dti float64) float64 {
	switch {
	case dti < 0.30:
		return 150
	case dti < 0.50:
		return 100
	default:
		return 50
	}
}
