package profile

import "time"

type EmploymentType string

const (
	EmploymentSalaried      EmploymentType = "SALARIED"
	EmploymentSelfEmployed  EmploymentType = "SELF_EMPLOYED"
	EmploymentBusinessOwner EmploymentType = "BUSINESS_OWNER"
	EmploymentUnemployed    EmploymentType = "UNEMPLOYED"
	EmploymentRetired       EmploymentType = "RETIRED"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusinessOwner,
		EmploymentUnemployed, EmploymentRetired:
		return true
	}
	return false
}

// ProvisionalScore is assigned to a profile before its first scoring run.
const ProvisionalScore = 300

// Profile holds the latest financial figures an applicant declared. One per applicant.
type Profile struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID          string         `gorm:"size:32;uniqueIndex:ux_profiles_user_id" json:"user_id"`
	EmploymentType  EmploymentType `gorm:"type:varchar(20)" json:"employment_type"`
	AnnualIncome    float64        `gorm:"type:decimal(18,2)" json:"annual_income"`
	MonthlyExpenses float64        `gorm:"type:decimal(18,2)" json:"monthly_expenses"`
	CreditScore     int            `gorm:"not null;default:300" json:"credit_score"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
