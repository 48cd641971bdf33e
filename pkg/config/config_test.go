package config

import (
	"strings"
	"testing"
)

func validBase(t *testing.T) {
	t.Helper()
	t.Setenv("BAYTKUM_APP_ENV", "dev")
	t.Setenv("BAYTKUM_APP_PORT", "8080")
	t.Setenv("BAYTKUM_JWT_SECRET", "secret")
	t.Setenv("BAYTKUM_ADMIN_EMAIL", "admin@example.com")
	t.Setenv("BAYTKUM_ADMIN_PASSWORD_HASH", "argon2id$stub")
}

func TestLoadAssemblesDSNFromDiscreteVars(t *testing.T) {
	validBase(t)
	t.Setenv("BAYTKUM_DB_HOST", "localhost")
	t.Setenv("BAYTKUM_DB_USER", "baytkum")
	t.Setenv("BAYTKUM_DB_PASSWORD", "pw")
	t.Setenv("BAYTKUM_DB_NAME", "baytkum")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(cfg.DB.DSN, "postgres://baytkum:pw@localhost:5432/baytkum") {
		t.Fatalf("unexpected dsn: %s", cfg.DB.DSN)
	}
	if !strings.Contains(cfg.DB.DSN, "sslmode=disable") {
		t.Fatalf("expected sslmode in dsn: %s", cfg.DB.DSN)
	}
}

func TestLoadPrefersExplicitDSN(t *testing.T) {
	validBase(t)
	t.Setenv("BAYTKUM_DB_DSN", "postgres://u@h:5432/d")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.DSN != "postgres://u@h:5432/d" {
		t.Fatalf("explicit dsn should win: %s", cfg.DB.DSN)
	}
}

func TestLoadRejectsMissingDBConfig(t *testing.T) {
	validBase(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when neither DSN nor discrete vars are set")
	}
}

func TestAppEnvHelpers(t *testing.T) {
	t.Parallel()

	app := AppConfig{Env: "DEV"}
	if !app.IsDev() || app.IsProd() {
		t.Fatal("env comparison should be case-insensitive")
	}
}
