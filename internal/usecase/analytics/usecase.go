// Package analytics builds the portfolio dashboard shown to admins and risk analysts.
package analytics

import (
	"context"
	"time"

	domain "loan-origination-backend/internal/domain/analytics"
	"loan-origination-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cacheKey = "analytics:dashboard"

// Cache is satisfied by cache.JSONStore.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

type Breakdown struct {
	Active    int64 `json:"active"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Defaulted int64 `json:"defaulted"`
}

type DashboardDTO struct {
	TotalLoans       int64     `json:"total_loans"`
	ApprovalRate     float64   `json:"approval_rate"`
	RejectionRate    float64   `json:"rejection_rate"`
	DefaultRate      float64   `json:"default_rate"`
	AvgCreditScore   float64   `json:"avg_credit_score"`
	TotalOutstanding float64   `json:"total_outstanding"`
	Breakdown        Breakdown `json:"breakdown"`
}

type Usecase struct {
	repo  domain.Repository
	cache Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewUsecase: cache may be nil, in which case every call hits the database.
func NewUsecase(repo domain.Repository, cache Cache, ttl time.Duration, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, cache: cache, ttl: ttl, log: log}
}

func (u *Usecase) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	if u.cache != nil {
		var cached DashboardDTO
		ok, err := u.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			u.log.Warn("analytics cache read failed", zap.Error(err))
		} else if ok {
			return &cached, nil
		}
	}

	d, err := u.compute(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil && u.ttl > 0 {
		if err := u.cache.Set(ctx, cacheKey, d, u.ttl); err != nil {
			u.log.Warn("analytics cache write failed", zap.Error(err))
		}
	}
	return d, nil
}

func (u *Usecase) compute(ctx context.Context) (*DashboardDTO, error) {
	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := u.repo.AverageCreditScore(ctx)
	if err != nil {
		return nil, err
	}
	outstanding, err := u.repo.SumRemaining(ctx, loan.StatusActive, loan.StatusDefaulted)
	if err != nil {
		return nil, err
	}

	sum := func(ss ...loan.Status) int64 {
		var n int64
		for _, s := range ss {
			n += counts[s]
		}
		return n
	}
	var total int64
	for _, n := range counts {
		total += n
	}

	approved := sum(loan.StatusApproved, loan.StatusActive, loan.StatusClosed, loan.StatusDefaulted)
	disbursed := sum(loan.StatusActive, loan.StatusClosed, loan.StatusDefaulted)

	return &DashboardDTO{
		TotalLoans:       total,
		ApprovalRate:     percent(approved, total),
		RejectionRate:    percent(counts[loan.StatusRejected], total),
		DefaultRate:      percent(counts[loan.StatusDefaulted], disbursed),
		AvgCreditScore:   round2(decimal.NewFromFloat(avg)),
		TotalOutstanding: round2(decimal.NewFromFloat(outstanding)),
		Breakdown: Breakdown{
			Active:    counts[loan.StatusActive],
			Approved:  counts[loan.StatusApproved],
			Rejected:  counts[loan.StatusRejected],
			Defaulted: counts[loan.StatusDefaulted],
		},
	}, nil
}

// percent returns part/whole*100 rounded to 2 places; an empty whole yields 0.
func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return round2(decimal.NewFromInt(part).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(whole)))
}

func round2(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }
