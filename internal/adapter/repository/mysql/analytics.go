package mysql

import (
	"context"

	loanDomain "loan-origination-backend/internal/domain/loan"
	profileDomain "loan-origination-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type AnalyticsRepository struct{ db *gorm.DB }

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository { return &AnalyticsRepository{db: db} }

type statusCount struct {
	Status loanDomain.Status
	Total  int64
}

func (r *AnalyticsRepository) CountByStatus(ctx context.Context) (map[loanDomain.Status]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[loanDomain.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}

func (r *AnalyticsRepository) AverageCreditScore(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&profileDomain.Profile{}).
		Select("COALESCE(AVG(credit_score), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *AnalyticsRepository) SumRemaining(ctx context.Context, statuses ...loanDomain.Status) (float64, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var sum float64
	err := q.Select("COALESCE(SUM(remaining_amount), 0)").Scan(&sum).Error
	return sum, err
}
