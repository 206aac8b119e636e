package mysql

import (
	"testing"
	"time"

	auditDomain "loan-origination-backend/internal/domain/audit"
	loanDomain "loan-origination-backend/internal/domain/loan"
	profileDomain "loan-origination-backend/internal/domain/profile"
	userDomain "loan-origination-backend/internal/domain/user"
	"loan-origination-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB. The domain models avoid MySQL-only
// column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&loanDomain.Loan{}, &profileDomain.Profile{}, &auditDomain.Entry{}, &userDomain.User{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(applicantID string, status loanDomain.Status) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:          id.NewID32(),
		ApplicantID:     applicantID,
		Amount:          100_000,
		TenureMonths:    12,
		InterestRate:    10,
		MonthlyEmi:      8791.59,
		RemainingAmount: 100_000,
		Status:          status,
		StatusUpdatedAt: time.Now().UTC(),
	}
}
