package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

// RateLimiter is the redis surface the middleware needs.
type RateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit applies a fixed-window limit per client IP for the named scope.
// A limiter outage fails open.
func RateLimit(limiter RateLimiter, scope string, limit int, window time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := scope + ":" + clientIP(r)
			allowed, _, err := limiter.FixedWindowAllow(r.Context(), key, int64(limit), window)
			if err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "rate limit check failed: "+err.Error())
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
