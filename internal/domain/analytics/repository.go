package analytics

import (
	"context"

	"loan-origination-backend/internal/domain/loan"
)

// Repository is the read model behind the dashboard.
type Repository interface {
	CountByStatus(ctx context.Context) (map[loan.Status]int64, error)
	AverageCreditScore(ctx context.Context) (float64, error)
	SumRemaining(ctx context.Context, statuses ...loan.Status) (float64, error)
}
