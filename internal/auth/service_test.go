package auth

import (
	"context"
	"errors"
	"testing"

	pkgauth "github.com/kartzyhq/kartzy-backend/pkg/auth"
	"github.com/kartzyhq/kartzy-backend/pkg/config"
	pkgerrors "github.com/kartzyhq/kartzy-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(), config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "kartzy",
		ExpirationMinutes: 60,
	}, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRegisterIssuesCustomerToken(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jordan Price",
		Email:    "Jordan@Example.com",
		Password: "Sunlit8Harbor",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if result.Token == "" {
		t.Fatal("expected signed token")
	}
	if result.User.Role != pkgauth.RoleCustomer {
		t.Fatalf("expected customer role got %s", result.User.Role)
	}
	if result.User.Email != "jordan@example.com" {
		t.Fatalf("expected normalized email got %q", result.User.Email)
	}

	claims, err := pkgauth.ParseAccessToken(config.JWTConfig{Secret: "test-secret", Issuer: "kartzy"}, result.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Role != pkgauth.RoleCustomer || claims.Email != "jordan@example.com" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService(t)

	input := RegisterInput{Name: "Jordan Price", Email: "jordan@example.com", Password: "Sunlit8Harbor"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Other Person",
		Email:    "JORDAN@example.com",
		Password: "Another9Pass",
	})
	var typed *pkgerrors.Error
	if !errors.As(err, &typed) || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict got %v", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jordan Price",
		Email:    "jordan@example.com",
		Password: "Sunlit8Harbor",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), LoginInput{Email: "jordan@example.com", Password: "Sunlit8Harbor"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token on login")
	}

	_, err = svc.Login(context.Background(), LoginInput{Email: "jordan@example.com", Password: "WrongPass1"})
	var typed *pkgerrors.Error
	if !errors.As(err, &typed) || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for bad password got %v", err)
	}
}

func TestLoginUnknownEmailIsUnauthorized(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "Whatever1"})
	var typed *pkgerrors.Error
	if !errors.As(err, &typed) || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized got %v", err)
	}
	if typed.Message() != "Invalid email or password" {
		t.Fatalf("expected indistinguishable message got %q", typed.Message())
	}
}

func TestSeedAdmin(t *testing.T) {
	svc := newTestService(t)

	if err := svc.SeedAdmin(context.Background(), config.AdminConfig{}); err != nil {
		t.Fatalf("blank config should be a no-op: %v", err)
	}

	cfg := config.AdminConfig{Name: "Kartzy Admin", Email: "admin@kartzy.dev", Password: "Admin1Secret"}
	if err := svc.SeedAdmin(context.Background(), cfg); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	result, err := svc.Login(context.Background(), LoginInput{Email: "admin@kartzy.dev", Password: "Admin1Secret"})
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if result.User.Role != pkgauth.RoleAdmin {
		t.Fatalf("expected admin role got %s", result.User.Role)
	}

	// reseeding must not clobber the existing account
	if err := svc.SeedAdmin(context.Background(), cfg); err != nil {
		t.Fatalf("reseed admin: %v", err)
	}
}
