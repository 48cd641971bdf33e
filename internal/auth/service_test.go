package auth

import (
	"context"
	"io"
	"testing"

	pkgauth "github.com/khaldoun-digital/baytkum-backend/pkg/auth"
	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/security"
)

func testConfigs(t *testing.T, password string) (config.AdminConfig, config.JWTConfig) {
	t.Helper()

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admin := config.AdminConfig{
		Email:        "admin@baytkum.com",
		PasswordHash: hash,
	}
	jwt := config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "baytkum",
		ExpirationMinutes: 60,
	}
	return admin, jwt
}

func newAuth(t *testing.T, admin config.AdminConfig, jwt config.JWTConfig) Service {
	t.Helper()
	svc, err := NewService(admin, jwt, logger.New(logger.Options{Output: io.Discard}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestLoginMintsParsableToken(t *testing.T) {
	t.Parallel()

	admin, jwt := testConfigs(t, "correct horse battery")
	svc := newAuth(t, admin, jwt)

	result, err := svc.Login(context.Background(), "Admin@Baytkum.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := pkgauth.ParseAdminToken(jwt, result.Token)
	if err != nil {
		t.Fatalf("ParseAdminToken: %v", err)
	}
	if claims.Email != admin.Email {
		t.Fatalf("expected claims for %q, got %q", admin.Email, claims.Email)
	}
	if !result.ExpiresAt.After(result.ExpiresAt.Add(-jwt.Expiration())) {
		t.Fatal("expiry must be in the future")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	admin, jwt := testConfigs(t, "right-password")
	svc := newAuth(t, admin, jwt)
	ctx := context.Background()

	if _, err := svc.Login(ctx, admin.Email, "wrong-password"); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "other@example.com", "right-password"); !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for wrong email, got %v", err)
	}
	if _, err := svc.Login(ctx, "", ""); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for empty input, got %v", err)
	}
}
