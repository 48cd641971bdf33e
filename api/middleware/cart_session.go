package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

// CartSession reads the cart session cookie, minting a new id when the
// visitor has none, and seeds the request context. The cookie outlives the
// browser session so the cart survives a revisit.
func CartSession(cfg config.CartConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.SessionCookie); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.SessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.TTL / time.Second),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
