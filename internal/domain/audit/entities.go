package audit

import "time"

// SystemActor marks entries written without a human reviewer.
const SystemActor = "system"

const (
	ActionApplied       = "LOAN_APPLIED"
	ActionAutoRejected  = "LOAN_AUTO_REJECTED"
	ActionReviewStarted = "LOAN_REVIEW_STARTED"
	ActionApproved      = "LOAN_APPROVED"
	ActionRejected      = "LOAN_REJECTED"
)

// Entry is append-only; nothing updates or deletes it.
type Entry struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	AuditID   string    `gorm:"size:32;uniqueIndex:ux_audit_logs_audit_id" json:"audit_id"`
	LoanID    string    `gorm:"size:32;index:idx_audit_logs_loan_created" json:"loan_id"`
	ActorID   string    `gorm:"size:32" json:"actor_id"`
	Action    string    `gorm:"size:40" json:"action"`
	OldStatus string    `gorm:"type:varchar(20)" json:"old_status"`
	NewStatus string    `gorm:"type:varchar(20)" json:"new_status"`
	Details   string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_audit_logs_loan_created" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }
