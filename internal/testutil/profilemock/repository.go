package profilemock

import (
	"context"

	domain "loan-origination-backend/internal/domain/profile"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.Profile, error)
	SaveFn        func(ctx context.Context, p *domain.Profile) error
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
