package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "loan-origination-backend/internal/domain/user"
	"loan-origination-backend/pkg/id"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Issuer signs access tokens; token.Service implements it.
type Issuer interface {
	Issue(userID string, role domain.Role) (string, time.Time, error)
}

type UserDTO struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type TokenDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserDTO   `json:"user"`
}

type Usecase struct {
	users  domain.Repository
	issuer Issuer
	cost   int
	log    *zap.Logger
}

// NewUsecase: cost is the bcrypt work factor; zero means bcrypt.DefaultCost.
func NewUsecase(users domain.Repository, issuer Issuer, cost int, log *zap.Logger) *Usecase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{users: users, issuer: issuer, cost: cost, log: log}
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{UserID: u.UserID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

// Register signs up a new applicant. Staff accounts come from Provision.
func (u *Usecase) Register(ctx context.Context, name, email, password string) (*UserDTO, error) {
	return u.Provision(ctx, name, email, password, domain.RoleApplicant)
}

func (u *Usecase) Provision(ctx context.Context, name, email, password string, role domain.Role) (*UserDTO, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, err
	}
	usr := &domain.User{
		UserID:       id.NewID32(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	u.log.Info("user registered", zap.String("user_id", usr.UserID), zap.String("role", string(role)))
	dto := toUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, email, password string) (*TokenDTO, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, exp, err := u.issuer.Issue(usr.UserID, usr.Role)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{AccessToken: tok, TokenType: "Bearer", ExpiresAt: exp, User: toUserDTO(usr)}, nil
}
