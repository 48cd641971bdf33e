package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khaldoun-digital/baytkum-backend/pkg/auth"
	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/security"
)

// LoginResult carries the minted session token.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// Service authenticates the single admin account configured from the
// environment. There is no user table.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type service struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
	log   *logger.Logger
	now   func() time.Time
}

// NewService builds the admin auth service.
func NewService(admin config.AdminConfig, jwt config.JWTConfig, log *logger.Logger) (Service, error) {
	if admin.Email == "" || admin.PasswordHash == "" {
		return nil, fmt.Errorf("admin credentials required")
	}
	if jwt.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{admin: admin, jwt: jwt, log: log, now: time.Now}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	// Verify the hash even for a wrong email so both paths cost the same.
	match, err := security.VerifyPassword(password, s.admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match || email != strings.ToLower(s.admin.Email) {
		s.log.Warn(ctx, "admin login rejected")
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now().UTC()
	token, err := auth.MintAdminToken(s.jwt, now, s.admin.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	s.log.Info(ctx, "admin logged in")
	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.jwt.Expiration()),
	}, nil
}
