package review

import (
	"time"

	"loan-origination-backend/internal/domain/audit"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/profile"
	loanuc "loan-origination-backend/internal/usecase/loan"
)

// DefaultRejectReason is recorded when a reviewer rejects without saying why.
const DefaultRejectReason = "No reason provided"

type TransitionInput struct {
	LoanID  string
	ActorID string
	Target  domain.Status
	Reason  string // optional; audit detail
}

type ProfileDTO struct {
	EmploymentType  string  `json:"employment_type"`
	AnnualIncome    float64 `json:"annual_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	CreditScore     int     `json:"credit_score"`
}

type AuditDTO struct {
	AuditID   string    `json:"audit_id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DetailDTO is the officer's view of a single loan.
type DetailDTO struct {
	Loan    *loanuc.LoanDTO `json:"loan"`
	Profile *ProfileDTO     `json:"profile,omitempty"`
	Audit   []AuditDTO      `json:"audit_trail"`
}

func toProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		EmploymentType:  string(p.EmploymentType),
		AnnualIncome:    p.AnnualIncome,
		MonthlyExpenses: p.MonthlyExpenses,
		CreditScore:     p.CreditScore,
	}
}

func toAuditDTOs(es []audit.Entry) []AuditDTO {
	out := make([]AuditDTO, 0, len(es))
	for _, e := range es {
		out = append(out, AuditDTO{
			AuditID:   e.AuditID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			OldStatus: e.OldStatus,
			NewStatus: e.NewStatus,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
