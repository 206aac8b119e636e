package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Role string

const (
	RoleApplicant   Role = "APPLICANT"
	RoleLoanOfficer Role = "LOAN_OFFICER"
	RoleRiskAnalyst Role = "RISK_ANALYST"
	RoleAdmin       Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleLoanOfficer, RoleRiskAnalyst, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name         string    `gorm:"size:120" json:"name"`
	Email        string    `gorm:"size:190;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	Role         Role      `gorm:"type:varchar(20)" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated caller handed to the workflows.
type Actor struct {
	UserID string
	Role   Role
}
