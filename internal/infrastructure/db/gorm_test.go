package db

import (
	"context"
	"errors"
	"testing"

	"loan-origination-backend/internal/domain/loan"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm/logger"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial, logger.Silent)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial, logger.Silent)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGorm_UnknownDriver(t *testing.T) {
	if _, err := OpenGorm("postgres", "whatever", logger.Silent); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestOpenGorm_SQLiteMigrate(t *testing.T) {
	gdb, err := OpenGorm(DriverSQLite, "file::memory:", logger.Silent)
	if err != nil {
		t.Fatalf("OpenGorm sqlite: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"users", "profiles", "loans", "audit_logs"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s not created", table)
		}
	}

	l := &loan.Loan{LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", ApplicantID: "b", Amount: 1, TenureMonths: 1, Status: loan.StatusApplied}
	if err := gdb.WithContext(context.Background()).Create(l).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestLogLevel(t *testing.T) {
	if LogLevel("INFO") != logger.Info || LogLevel("silent") != logger.Silent || LogLevel("") != logger.Error {
		t.Fatal("unexpected gorm log level mapping")
	}
}
