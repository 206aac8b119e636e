package uow

import (
	"context"

	"loan-origination-backend/internal/domain/audit"
	"loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/profile"
)

// Repos are bound to the same transaction.
type Repos struct {
	Loans    loan.Repository
	Profiles profile.Repository
	Audits   audit.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx loads the loan first; a missing loan surfaces as gorm.ErrRecordNotFound.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
