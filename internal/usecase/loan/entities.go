package loan

import (
	"time"

	domain "loan-origination-backend/internal/domain/loan"
)

type ApplyInput struct {
	ApplicantID     string
	Amount          float64
	TenureMonths    int
	EmploymentType  string
	AnnualIncome    float64
	MonthlyExpenses float64
}

type LoanDTO struct {
	LoanID          string     `json:"loan_id"`
	ApplicantID     string     `json:"applicant_id"`
	Amount          float64    `json:"amount"`
	TenureMonths    int        `json:"tenure_months"`
	InterestRate    float64    `json:"interest_rate"`
	MonthlyEmi      float64    `json:"monthly_emi"`
	RemainingAmount float64    `json:"remaining_amount"`
	MissedEmis      int        `json:"missed_emis"`
	Status          string     `json:"status"`
	CreditScore     int        `json:"credit_score,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		ApplicantID:     l.ApplicantID,
		Amount:          l.Amount,
		TenureMonths:    l.TenureMonths,
		InterestRate:    l.InterestRate,
		MonthlyEmi:      l.MonthlyEmi,
		RemainingAmount: l.RemainingAmount,
		MissedEmis:      l.MissedEmis,
		Status:          string(l.Status),
		StartDate:       l.StartDate,
		CreatedAt:       l.CreatedAt,
	}
}

func ToDTOs(ls []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *ToDTO(&ls[i]))
	}
	return out
}
