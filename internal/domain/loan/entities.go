package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusApplied     Status = "APPLIED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusActive      Status = "ACTIVE"
	StatusClosed      Status = "CLOSED"
	StatusDefaulted   Status = "DEFAULTED"
)

var allStatuses = []Status{
	StatusApplied, StatusUnderReview, StatusApproved, StatusRejected,
	StatusActive, StatusClosed, StatusDefaulted,
}

// OpenStatuses block a new application while any loan of the applicant is in one of them.
var OpenStatuses = []Status{StatusApplied, StatusUnderReview, StatusApproved, StatusActive}

// HistoryStatuses count as repayment history for credit scoring.
var HistoryStatuses = []Status{StatusClosed, StatusActive}

func ParseStatus(s string) (Status, bool) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s Status) In(set ...Status) bool {
	for _, st := range set {
		if s == st {
			return true
		}
	}
	return false
}

// Loan amount and tenure are fixed at creation; only status and start date move afterwards.
type Loan struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	ApplicantID     string         `gorm:"size:32;index:idx_loans_applicant_status" json:"applicant_id"`
	Amount          float64        `gorm:"type:decimal(18,2)" json:"amount"`
	TenureMonths    int            `gorm:"not null" json:"tenure_months"`
	InterestRate    float64        `gorm:"type:decimal(6,3)" json:"interest_rate"`
	MonthlyEmi      float64        `gorm:"type:decimal(18,2)" json:"monthly_emi"`
	RemainingAmount float64        `gorm:"type:decimal(18,2)" json:"remaining_amount"`
	MissedEmis      int            `gorm:"not null;default:0" json:"missed_emis"`
	Status          Status         `gorm:"type:varchar(20);index:idx_loans_applicant_status;default:'APPLIED'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
