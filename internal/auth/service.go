package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgauth "github.com/kartzyhq/kartzy-backend/pkg/auth"
	"github.com/kartzyhq/kartzy-backend/pkg/config"
	pkgerrors "github.com/kartzyhq/kartzy-backend/pkg/errors"
	"github.com/kartzyhq/kartzy-backend/pkg/security"
)

// Service exposes account registration and credential verification.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	SeedAdmin(ctx context.Context, cfg config.AdminConfig) error
}

// RegisterInput carries the already-validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries the login payload.
type LoginInput struct {
	Email    string
	Password string
}

// Profile is the public view of an account returned with tokens.
type Profile struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Role  pkgauth.Role `json:"role"`
}

// AuthResult bundles a minted access token with the account it belongs to.
type AuthResult struct {
	Token string
	User  Profile
}

type service struct {
	repo      *Repository
	jwtConfig config.JWTConfig
	passwords config.PasswordConfig
	now       func() time.Time
}

// NewService builds an auth service over the given account repository.
func NewService(repo *Repository, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{
		repo:      repo,
		jwtConfig: jwtCfg,
		passwords: pwCfg,
		now:       time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	hash, err := security.HashPassword(input.Password, s.passwords)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         pkgauth.RoleCustomer,
		CreatedAt:    s.now(),
	}

	if !s.repo.Create(user) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Email already registered")
	}

	return s.issue(user)
}

func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, ok := s.repo.FindByEmail(input.Email)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password")
	}

	match, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password")
	}

	return s.issue(user)
}

// SeedAdmin registers the configured admin account. A blank config is a
// no-op; an already-seeded email is left untouched.
func (s *service) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	hash, err := security.HashPassword(cfg.Password, s.passwords)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	s.repo.Create(User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(cfg.Name),
		Email:        normalizeEmail(cfg.Email),
		PasswordHash: hash,
		Role:         pkgauth.RoleAdmin,
		CreatedAt:    s.now(),
	})
	return nil
}

func (s *service) issue(user User) (*AuthResult, error) {
	token, err := pkgauth.MintAccessToken(s.jwtConfig, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return &AuthResult{
		Token: token,
		User: Profile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
