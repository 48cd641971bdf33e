package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/api/middleware"
	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	cartsvc "github.com/khaldoun-digital/baytkum-backend/internal/cart"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

// Zero and negative quantities are valid inputs: add normalizes them to 1,
// and a non-positive set-quantity removes the line.
type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Qty       int       `json:"qty"`
}

type setCartQtyRequest struct {
	Qty int `json:"qty"`
}

// CartGet returns the session cart.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Get(r.Context(), middleware.CartSessionFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(state, i18n.FromContext(r.Context())))
	}
}

// CartAddItem adds a product to the session cart.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.AddItem(r.Context(), middleware.CartSessionFromContext(r.Context()), payload.ProductID, payload.Qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(state, i18n.FromContext(r.Context())))
	}
}

// CartSetQuantity replaces the quantity of one cart line.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload setCartQtyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.SetQuantity(r.Context(), middleware.CartSessionFromContext(r.Context()), productID, payload.Qty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(state, i18n.FromContext(r.Context())))
	}
}

// CartRemoveItem removes one cart line.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		state, err := svc.RemoveItem(r.Context(), middleware.CartSessionFromContext(r.Context()), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(state, i18n.FromContext(r.Context())))
	}
}

// CartClear empties the session cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context(), middleware.CartSessionFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(cartsvc.State{}, i18n.FromContext(r.Context())))
	}
}
