package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loan-origination-backend/internal/domain/user"
	"loan-origination-backend/internal/infrastructure/token"
	"loan-origination-backend/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// memUsers is a usermock backed by a map keyed on email.
func memUsers() (*usermock.Repo, map[string]*domain.User) {
	byEmail := map[string]*domain.User{}
	return &usermock.Repo{
		CreateFn: func(_ context.Context, u *domain.User) error {
			if _, ok := byEmail[u.Email]; ok {
				return gorm.ErrDuplicatedKey
			}
			cp := *u
			byEmail[u.Email] = &cp
			return nil
		},
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if u, ok := byEmail[email]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}, byEmail
}

func newUsecase(repo domain.Repository) (*Usecase, *token.Service) {
	svc := token.NewService("test-secret", "loan-origination", time.Hour)
	return NewUsecase(repo, svc, bcrypt.MinCost, nil), svc
}

func TestRegisterThenLogin(t *testing.T) {
	repo, store := memUsers()
	uc, svc := newUsecase(repo)
	ctx := context.Background()

	u, err := uc.Register(ctx, " Ada ", " Ada@Example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "APPLICANT", u.Role)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Len(t, u.UserID, 32)
	assert.NotEqual(t, "s3cret-pass", store["ada@example.com"].PasswordHash)

	tok, err := uc.Login(ctx, "ADA@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)

	actor, err := svc.Validate(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, actor.UserID)
	assert.Equal(t, domain.RoleApplicant, actor.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo, _ := memUsers()
	uc, _ := newUsecase(repo)

	_, err := uc.Register(context.Background(), "A", "a@example.com", "password1")
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "B", "A@example.com", "password2")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_DuplicateOnInsertRace(t *testing.T) {
	repo := &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) { return nil, gorm.ErrRecordNotFound },
		CreateFn:     func(context.Context, *domain.User) error { return gorm.ErrDuplicatedKey },
	}
	uc, _ := newUsecase(repo)
	_, err := uc.Register(context.Background(), "A", "a@example.com", "password1")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestProvision_StaffRole(t *testing.T) {
	repo, store := memUsers()
	uc, _ := newUsecase(repo)

	u, err := uc.Provision(context.Background(), "Olive", "olive@bank.test", "password1", domain.RoleLoanOfficer)
	require.NoError(t, err)
	assert.Equal(t, "LOAN_OFFICER", u.Role)
	assert.Equal(t, domain.RoleLoanOfficer, store["olive@bank.test"].Role)

	_, err = uc.Provision(context.Background(), "X", "x@bank.test", "password1", domain.Role("ROOT"))
	assert.Error(t, err)
}

func TestLogin_Failures(t *testing.T) {
	repo, _ := memUsers()
	uc, _ := newUsecase(repo)
	ctx := context.Background()
	_, err := uc.Register(ctx, "A", "a@example.com", "right-password")
	require.NoError(t, err)

	_, err = uc.Login(ctx, "a@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "nobody@example.com", "right-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_RepoErrorNotMasked(t *testing.T) {
	boom := errors.New("db down")
	repo := &usermock.Repo{GetByEmailFn: func(context.Context, string) (*domain.User, error) { return nil, boom }}
	uc, _ := newUsecase(repo)

	_, err := uc.Login(context.Background(), "a@example.com", "x")
	assert.ErrorIs(t, err, boom)
}
