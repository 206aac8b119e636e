package audit

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// ListByLoanID returns the trail oldest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Entry, error)
}
