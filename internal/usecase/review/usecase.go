package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loan-origination-backend/internal/domain/audit"
	domain "loan-origination-backend/internal/domain/loan"
	"loan-origination-backend/internal/domain/profile"
	"loan-origination-backend/internal/domain/uow"
	loanuc "loan-origination-backend/internal/usecase/loan"
	"loan-origination-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder receives every committed status change.
type Recorder interface {
	TransitionApplied(from, to string)
}

type nopRecorder struct{}

func (nopRecorder) TransitionApplied(string, string) {}

// rule is evaluated inside the transaction, after the source status matched.
type rule func(ctx context.Context, r uow.Repos, l *domain.Loan) error

type transition struct {
	from   domain.Status
	action string
	check  rule
}

type Usecase struct {
	loans    domain.Repository
	profiles profile.Repository
	audits   audit.Repository
	uow      uow.UnitOfWork
	log      *zap.Logger
	recorder Recorder
	now      func() time.Time

	table map[domain.Status]transition
}

func NewUsecase(loans domain.Repository, profiles profile.Repository, audits audit.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	u := &Usecase{
		loans:    loans,
		profiles: profiles,
		audits:   audits,
		uow:      tx,
		log:      log,
		recorder: nopRecorder{},
		now:      func() time.Time { return time.Now().UTC() },
	}
	u.table = map[domain.Status]transition{
		domain.StatusUnderReview: {from: domain.StatusApplied, action: audit.ActionReviewStarted},
		domain.StatusApproved:    {from: domain.StatusUnderReview, action: audit.ActionApproved, check: approvable},
		domain.StatusRejected:    {from: domain.StatusUnderReview, action: audit.ActionRejected},
	}
	return u
}

func (u *Usecase) WithRecorder(r Recorder) *Usecase {
	if r != nil {
		u.recorder = r
	}
	return u
}

// approvable requires a scored profile whose income still carries the loan's EMI.
func approvable(ctx context.Context, r uow.Repos, l *domain.Loan) error {
	p, err := r.Profiles.GetByUserID(ctx, l.ApplicantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrProfileIncomplete
	}
	if err != nil {
		return err
	}
	if p.CreditScore < domain.MinApprovalScore {
		return fmt.Errorf("%w: score %d, minimum %d", domain.ErrCreditScoreTooLow, p.CreditScore, domain.MinApprovalScore)
	}
	if !domain.EmiWithinIncome(l.MonthlyEmi, p.AnnualIncome) {
		return fmt.Errorf("%w: EMI %.2f", domain.ErrEmiTooHigh, l.MonthlyEmi)
	}
	return nil
}

// Transition is the only way a loan changes status after creation.
// The write is a compare-and-swap on the observed status, so a concurrent
// reviewer that got there first makes this call fail with ErrInvalidStateTransition.
func (u *Usecase) Transition(ctx context.Context, in TransitionInput) (*loanuc.LoanDTO, error) {
	t, ok := u.table[in.Target]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a review target", domain.ErrInvalidStateTransition, in.Target)
	}

	var (
		updated *domain.Loan
		from    domain.Status
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != t.from {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStateTransition, l.Status, in.Target)
		}
		if t.check != nil {
			if err := t.check(ctx, r, l); err != nil {
				return err
			}
		}

		now := u.now()
		var start *time.Time
		if in.Target == domain.StatusApproved {
			start = &now
		}
		if err := r.Loans.CompareAndSwapStatus(ctx, l.LoanID, l.Status, in.Target, start); err != nil {
			return err
		}

		details := in.Reason
		if details == "" && in.Target == domain.StatusRejected {
			details = DefaultRejectReason
		}
		if err := r.Audits.Append(ctx, &audit.Entry{
			AuditID:   id.NewID32(),
			LoanID:    l.LoanID,
			ActorID:   in.ActorID,
			Action:    t.action,
			OldStatus: string(l.Status),
			NewStatus: string(in.Target),
			Details:   details,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		from = l.Status
		l.Status = in.Target
		l.StatusUpdatedAt = now
		if start != nil {
			l.StartDate = start
		}
		updated = l
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.recorder.TransitionApplied(string(from), string(in.Target))
	u.log.Info("loan status changed",
		zap.String("loan_id", updated.LoanID),
		zap.String("actor_id", in.ActorID),
		zap.String("from", string(from)),
		zap.String("to", string(in.Target)),
	)
	return loanuc.ToDTO(updated), nil
}

func (u *Usecase) StartReview(ctx context.Context, loanID, actorID string) (*loanuc.LoanDTO, error) {
	return u.Transition(ctx, TransitionInput{LoanID: loanID, ActorID: actorID, Target: domain.StatusUnderReview})
}

func (u *Usecase) Approve(ctx context.Context, loanID, actorID string) (*loanuc.LoanDTO, error) {
	return u.Transition(ctx, TransitionInput{LoanID: loanID, ActorID: actorID, Target: domain.StatusApproved})
}

func (u *Usecase) Reject(ctx context.Context, loanID, actorID, reason string) (*loanuc.LoanDTO, error) {
	return u.Transition(ctx, TransitionInput{LoanID: loanID, ActorID: actorID, Target: domain.StatusRejected, Reason: reason})
}

// Detail loads the loan together with the applicant's profile (if any) and the audit trail, oldest entry first.
func (u *Usecase) Detail(ctx context.Context, loanID string) (*DetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p, err := u.profiles.GetByUserID(ctx, l.ApplicantID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = nil
	case err != nil:
		return nil, err
	}

	trail, err := u.audits.ListByLoanID(ctx, l.LoanID)
	if err != nil {
		return nil, err
	}

	return &DetailDTO{
		Loan:    loanuc.ToDTO(l),
		Profile: toProfileDTO(p),
		Audit:   toAuditDTOs(trail),
	}, nil
}

// Queue lists loans awaiting a decision; with no statuses it returns APPLIED and UNDER_REVIEW.
func (u *Usecase) Queue(ctx context.Context, statuses ...domain.Status) ([]loanuc.LoanDTO, error) {
	if len(statuses) == 0 {
		statuses = []domain.Status{domain.StatusApplied, domain.StatusUnderReview}
	}
	ls, err := u.loans.List(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	return loanuc.ToDTOs(ls), nil
}
