package mysql

import (
	"context"
	"time"

	loanDomain "loan-origination-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) FindOpenByApplicantID(ctx context.Context, applicantID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("applicant_id = ? AND status IN ?", applicantID, loanDomain.OpenStatuses).
		Order("created_at DESC, id DESC").
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) ListByApplicantID(ctx context.Context, applicantID string, statuses ...loanDomain.Status) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var out []loanDomain.Loan
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *LoanRepository) List(ctx context.Context, statuses ...loanDomain.Status) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var out []loanDomain.Loan
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *LoanRepository) CompareAndSwapStatus(ctx context.Context, loanID string, from, to loanDomain.Status, startDate *time.Time) error {
	updates := map[string]any{
		"status":            to,
		"status_updated_at": time.Now().UTC(),
	}
	if startDate != nil {
		updates["start_date"] = startDate.UTC()
	}
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrInvalidStateTransition
	}
	return nil
}
