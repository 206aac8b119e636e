package mysql

import (
	"context"

	profileDomain "loan-origination-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ProfileRepository) Save(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
