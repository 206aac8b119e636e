package profile

import "context"

type Repository interface {
	// GetByUserID returns gorm.ErrRecordNotFound when the applicant has no profile yet.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	// Save inserts when p.ID is zero, updates otherwise.
	Save(ctx context.Context, p *Profile) error
}
