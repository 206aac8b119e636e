package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loan-origination-backend/internal/domain/audit"
	"loan-origination-backend/internal/domain/credit"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/profile"
	"loan-origination-backend/internal/domain/uow"
	"loan-origination-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder receives the outcome of every accepted application.
type Recorder interface {
	ApplicationDecided(status string)
}

type nopRecorder struct{}

func (nopRecorder) ApplicationDecided(string) {}

type Usecase struct {
	repo     domain.Repository
	uow      uow.UnitOfWork
	rate     float64
	log      *zap.Logger
	recorder Recorder
}

// NewUsecase wires the application workflow. annualRate is a percentage (10.0 = 10%).
func NewUsecase(r domain.Repository, tx uow.UnitOfWork, annualRate float64, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, uow: tx, rate: annualRate, log: log, recorder: nopRecorder{}}
}

func (u *Usecase) WithRecorder(r Recorder) *Usecase {
	if r != nil {
		u.recorder = r
	}
	return u
}

func validateApply(in ApplyInput) error {
	switch {
	case !id.IsID32(in.ApplicantID):
		return fmt.Errorf("%w: applicant id", domain.ErrInvalidInput)
	case in.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	case in.TenureMonths <= 0:
		return fmt.Errorf("%w: tenure must be a positive number of months", domain.ErrInvalidInput)
	case in.AnnualIncome <= 0:
		return fmt.Errorf("%w: annual income must be positive", domain.ErrInvalidInput)
	case in.MonthlyExpenses < 0:
		return fmt.Errorf("%w: monthly expenses must not be negative", domain.ErrInvalidInput)
	case !profile.EmploymentType(in.EmploymentType).Valid():
		return fmt.Errorf("%w: employment type %q", domain.ErrInvalidInput, in.EmploymentType)
	}
	return nil
}

// Apply runs the eligibility checks, rescoring the applicant and creating the loan.
// Checks that fail abort before anything is written.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if err := validateApply(in); err != nil {
		return nil, err
	}

	var (
		created *domain.Loan
		score   int
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		open, err := r.Loans.FindOpenByApplicantID(ctx, in.ApplicantID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: loan %s is %s", domain.ErrActiveLoanExists, open.LoanID, open.Status)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if !domain.AmountWithinIncome(in.Amount, in.AnnualIncome) {
			return domain.ErrAmountExceedsIncomeLimit
		}

		emi := domain.MonthlyInstallment(in.Amount, u.rate, in.TenureMonths)
		if !domain.EmiWithinIncome(emi, in.AnnualIncome) {
			return fmt.Errorf("%w: estimated EMI %.2f", domain.ErrEmiExceedsIncomeLimit, emi)
		}

		p, err := r.Profiles.GetByUserID(ctx, in.ApplicantID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			p = &profile.Profile{UserID: in.ApplicantID, CreditScore: profile.ProvisionalScore}
		case err != nil:
			return err
		}
		p.EmploymentType = profile.EmploymentType(in.EmploymentType)
		p.AnnualIncome = in.AnnualIncome
		p.MonthlyExpenses = in.MonthlyExpenses
		if err := r.Profiles.Save(ctx, p); err != nil {
			return err
		}

		history, err := r.Loans.ListByApplicantID(ctx, in.ApplicantID, domain.HistoryStatuses...)
		if err != nil {
			return err
		}
		score = credit.Score(p.AnnualIncome, p.MonthlyExpenses, history)
		p.CreditScore = score
		if err := r.Profiles.Save(ctx, p); err != nil {
			return err
		}

		status := domain.StatusApplied
		if score < domain.AutoRejectScoreBelow {
			status = domain.StatusRejected
		}
		created = &domain.Loan{
			LoanID:          id.NewID32(),
			ApplicantID:     in.ApplicantID,
			Amount:          in.Amount,
			TenureMonths:    in.TenureMonths,
			InterestRate:    u.rate,
			MonthlyEmi:      domain.RoundMoney(emi),
			RemainingAmount: in.Amount,
			Status:          status,
			StatusUpdatedAt: time.Now().UTC(),
		}
		if err := r.Loans.Create(ctx, created); err != nil {
			return err
		}

		entry := &audit.Entry{
			AuditID:   id.NewID32(),
			LoanID:    created.LoanID,
			ActorID:   in.ApplicantID,
			Action:    audit.ActionApplied,
			NewStatus: string(status),
			Details:   fmt.Sprintf("Loan %s applied with credit score %d", created.LoanID, score),
		}
		if status == domain.StatusRejected {
			entry.ActorID = audit.SystemActor
			entry.Action = audit.ActionAutoRejected
			entry.Details = fmt.Sprintf("Auto-rejected: credit score %d below %d", score, domain.AutoRejectScoreBelow)
		}
		return r.Audits.Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	u.recorder.ApplicationDecided(string(created.Status))
	u.log.Info("loan application decided",
		zap.String("loan_id", created.LoanID),
		zap.String("applicant_id", created.ApplicantID),
		zap.String("status", string(created.Status)),
		zap.Int("credit_score", score),
	)

	dto := ToDTO(created)
	dto.CreditScore = score
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ToDTO(l), nil
}

// ListMine returns every loan of the applicant, newest first.
func (u *Usecase) ListMine(ctx context.Context, applicantID string) ([]LoanDTO, error) {
	ls, err := u.repo.ListByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return ToDTOs(ls), nil
}

func (u *Usecase) ListAll(ctx context.Context, statuses ...domain.Status) ([]LoanDTO, error) {
	ls, err := u.repo.List(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	return ToDTOs(ls), nil
}
