// Command seed provisions staff accounts and demo applicants.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"go.uber.org/zap"

	repo "loan-origination-backend/internal/adapter/repository/mysql"
	"loan-origination-backend/internal/config"
	"loan-origination-backend/internal/domain/user"
	"loan-origination-backend/internal/infrastructure/db"
	"loan-origination-backend/internal/infrastructure/logger"
	"loan-origination-backend/internal/usecase/auth"
)

type account struct {
	name  string
	email string
	role  user.Role
}

var accounts = []account{
	{"Admin", "admin@loans.local", user.RoleAdmin},
	{"Loan Officer", "officer@loans.local", user.RoleLoanOfficer},
	{"Risk Analyst", "analyst@loans.local", user.RoleRiskAnalyst},
	{"Demo Applicant One", "applicant1@loans.local", user.RoleApplicant},
	{"Demo Applicant Two", "applicant2@loans.local", user.RoleApplicant},
}

func main() {
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "password for every seeded account")
	flag.Parse()

	cfg := config.Load()
	log, err := logger.New(cfg.LogLevel, "loan-origination-seed")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if len(*password) < 8 {
		log.Fatal("seed password must be at least 8 characters (-password or SEED_PASSWORD)")
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), db.LogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	// the token issuer is not needed to provision accounts
	uc := auth.NewUsecase(repo.NewUserRepository(gdb), nil, cfg.BcryptCost, log)
	ctx := context.Background()
	for _, a := range accounts {
		u, err := uc.Provision(ctx, a.name, a.email, *password, a.role)
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			log.Info("account exists", zap.String("email", a.email))
		case err != nil:
			log.Fatal("seed failed", zap.String("email", a.email), zap.Error(err))
		default:
			log.Info("account created", zap.String("email", u.Email), zap.String("role", u.Role))
		}
	}
}
