package middleware

import (
	"net/http"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

// Language resolves the request language from the ?lang query parameter,
// falling back to the Accept-Language header, and seeds the context.
func Language(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get("lang")
			if raw == "" {
				raw = r.Header.Get("Accept-Language")
			}
			lang := i18n.Parse(raw)

			ctx := i18n.WithLang(r.Context(), lang)
			if logg != nil {
				ctx = logg.WithLang(ctx, string(lang))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
