package mysql

import (
	"context"
	"time"

	auditDomain "loan-origination-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

// Append inserts only; entries are never updated or deleted.
func (r *AuditRepository) Append(ctx context.Context, e *auditDomain.Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListByLoanID(ctx context.Context, loanID string) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
