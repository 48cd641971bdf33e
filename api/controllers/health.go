package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Baytkum-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks every backing service and aggregates the failures.
func HealthReady(cfg *config.Config, logg *logger.Logger, db pinger, redis pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Baytkum-Env", cfg.App.Env)

		var err error
		if db != nil {
			if pingErr := db.Ping(r.Context()); pingErr != nil {
				err = multierr.Append(err, pkgerrors.Wrap(pkgerrors.CodeDependency, pingErr, "postgres"))
			}
		}
		if redis != nil {
			if pingErr := redis.Ping(r.Context()); pingErr != nil {
				err = multierr.Append(err, pkgerrors.Wrap(pkgerrors.CodeDependency, pingErr, "redis"))
			}
		}

		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "not ready"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
