package credit

import (
	"testing"

	"loan-origination-backend/internal/domain/loan"
)

func TestScore_NewBorrowerExample(t *testing.T) {
	// DTI 10000/50000 = 0.20 -> +150, income 600 capped to 200, no history -> +20
	if got := Score(600_000, 10_000, nil); got != 670 {
		t.Fatalf("Score = %d, want 670", got)
	}
}

func TestScore_DTIBands(t *testing.T) {
	cases := []struct {
		name     string
		income   float64
		expenses float64
		want     int
	}{
		// income 120000 -> 120 points, monthly income 10000
		{"below 0.30", 120_000, 2_999, 300 + 120 + 150 + 20},
		{"exactly 0.30", 120_000, 3_000, 300 + 120 + 100 + 20},
		{"below 0.50", 120_000, 4_999, 300 + 120 + 100 + 20},
		{"exactly 0.50", 120_000, 5_000, 300 + 120 + 50 + 20},
		{"zero income is worst case", 0, 0, 300 + 0 + 50 + 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.income, tc.expenses, nil); got != tc.want {
				t.Fatalf("Score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScore_TruncatesFractionalIncomePoints(t *testing.T) {
	// 55500/1000 = 55.5 points -> 300 + 55.5 + 150 + 20 = 525.5 -> 525
	if got := Score(55_500, 0, nil); got != 525 {
		t.Fatalf("Score = %d, want 525", got)
	}
}

func TestScore_History(t *testing.T) {
	history := []loan.Loan{
		{Status: loan.StatusClosed, MissedEmis: 1},
		{Status: loan.StatusActive, MissedEmis: 0},
		// ignored: neither CLOSED nor ACTIVE
		{Status: loan.StatusRejected, MissedEmis: 5},
		{Status: loan.StatusDefaulted, MissedEmis: 7},
	}
	// 300 + 200 + 150 + 50 - 50*1
	if got := Score(600_000, 10_000, history); got != 650 {
		t.Fatalf("Score = %d, want 650", got)
	}
}

func TestScore_OnlyIgnoredHistoryCountsAsNewBorrower(t *testing.T) {
	history := []loan.Loan{{Status: loan.StatusRejected}, {Status: loan.StatusApplied}}
	if got := Score(600_000, 10_000, history); got != 670 {
		t.Fatalf("Score = %d, want 670", got)
	}
}

func TestScore_ClampedToBounds(t *testing.T) {
	bad := []loan.Loan{{Status: loan.StatusClosed, MissedEmis: 40}}
	if got := Score(0, 1_000, bad); got != MinScore {
		t.Fatalf("Score = %d, want %d", got, MinScore)
	}
	if got := Score(10_000_000, 0, []loan.Loan{{Status: loan.StatusClosed}}); got > MaxScore {
		t.Fatalf("Score = %d exceeds %d", got, MaxScore)
	}
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	incomes := []float64{0, 1, 999, 12_000, 250_000, 1e9}
	expenses := []float64{0, 1, 500, 50_000, 1e9}
	missed := []int{0, 1, 3, 100}
	for _, inc := range incomes {
		for _, exp := range expenses {
			for _, m := range missed {
				got := Score(inc, exp, []loan.Loan{{Status: loan.StatusActive, MissedEmis: m}})
				if got < MinScore || got > MaxScore {
					t.Fatalf("Score(%v,%v,missed=%d) = %d out of bounds", inc, exp, m, got)
				}
			}
		}
	}
}

func TestDebtToIncome(t *testing.T) {
	if got := DebtToIncome(0, 100); got != 1 {
		t.Fatalf("DebtToIncome zero income = %v, want 1", got)
	}
	if got := DebtToIncome(600_000, 10_000); got != 0.2 {
		t.Fatalf("DebtToIncome = %v, want 0.2", got)
	}
}
