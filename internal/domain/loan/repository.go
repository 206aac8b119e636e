package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)

	// FindOpenByApplicantID returns gorm.ErrRecordNotFound when the applicant has no loan in OpenStatuses.
	FindOpenByApplicantID(ctx context.Context, applicantID string) (*Loan, error)

	// ListByApplicantID returns every loan of the applicant when statuses is empty.
	ListByApplicantID(ctx context.Context, applicantID string, statuses ...Status) ([]Loan, error)
	List(ctx context.Context, statuses ...Status) ([]Loan, error)

	// CompareAndSwapStatus moves the loan from `from` to `to` only if it is still in `from`.
	// It returns ErrInvalidStateTransition when no row matched.
	CompareAndSwapStatus(ctx context.Context, loanID string, from, to Status, startDate *time.Time) error
}
