package controllers

import (
	"net/http"
	"time"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	authsvc "github.com/khaldoun-digital/baytkum-backend/internal/auth"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthLogin authenticates the admin account.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, loginResponse{
			Token:     result.Token,
			ExpiresAt: result.ExpiresAt,
		})
	}
}
