package auditmock

import (
	"context"

	domain "loan-origination-backend/internal/domain/audit"
)

var _ domain.Repository = (*Repo)(nil)

// Repo records appended entries in Entries unless AppendFn is set.
type Repo struct {
	AppendFn       func(ctx context.Context, e *domain.Entry) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Entry, error)

	Entries []domain.Entry
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Entry, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	var out []domain.Entry
	for _, e := range m.Entries {
		if e.LoanID == loanID {
			out = append(out, e)
		}
	}
	return out, nil
}
