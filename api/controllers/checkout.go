package controllers

import (
	"net/http"

	"github.com/khaldoun-digital/baytkum-backend/api/middleware"
	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	checkoutsvc "github.com/khaldoun-digital/baytkum-backend/internal/checkout"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName    string  `json:"customerName" validate:"required,min=2,max=120"`
	CustomerPhone   string  `json:"customerPhone" validate:"required,min=8,max=20"`
	CustomerAddress string  `json:"customerAddress" validate:"required,min=5,max=500"`
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
}

// CheckoutSubmit turns the session cart into a pending order.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), middleware.CartSessionFromContext(r.Context()), checkoutsvc.SubmitInput{
			CustomerName:    payload.CustomerName,
			CustomerPhone:   payload.CustomerPhone,
			CustomerAddress: payload.CustomerAddress,
			Notes:           payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newOrderView(order))
	}
}
