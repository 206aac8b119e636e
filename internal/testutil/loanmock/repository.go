package loanmock

import (
	"context"
	"time"

	domain "loan-origination-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes are no-ops.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn           func(ctx context.Context, loanID string) (*domain.Loan, error)
	FindOpenByApplicantIDFn func(ctx context.Context, applicantID string) (*domain.Loan, error)
	ListByApplicantIDFn     func(ctx context.Context, applicantID string, statuses ...domain.Status) ([]domain.Loan, error)
	ListFn                  func(ctx context.Context, statuses ...domain.Status) ([]domain.Loan, error)
	CompareAndSwapStatusFn  func(ctx context.Context, loanID string, from, to domain.Status, startDate *time.Time) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) FindOpenByApplicantID(ctx context.Context, applicantID string) (*domain.Loan, error) {
	if m.FindOpenByApplicantIDFn != nil {
		return m.FindOpenByApplicantIDFn(ctx, applicantID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByApplicantID(ctx context.Context, applicantID string, statuses ...domain.Status) ([]domain.Loan, error) {
	if m.ListByApplicantIDFn != nil {
		return m.ListByApplicantIDFn(ctx, applicantID, statuses...)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context, statuses ...domain.Status) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, statuses...)
	}
	return nil, nil
}

func (m *Repo) CompareAndSwapStatus(ctx context.Context, loanID string, from, to domain.Status, startDate *time.Time) error {
	if m.CompareAndSwapStatusFn != nil {
		return m.CompareAndSwapStatusFn(ctx, loanID, from, to, startDate)
	}
	return nil
}
