package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	"github.com/khaldoun-digital/baytkum-backend/internal/orders"
	"github.com/khaldoun-digital/baytkum-backend/pkg/enums"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

// AdminOrdersList lists orders newest first, optionally filtered by status.
func AdminOrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r.URL.Query())

		filter := orders.ListFilter{}
		if value := r.URL.Query().Get("status"); value != "" {
			status, err := enums.ParseOrderStatus(value)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filter.Status = &status
		}

		list, total, err := svc.List(r.Context(), filter, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listEnvelope[orderView]{
			Items: newOrderViews(list),
			Meta:  listMeta{Total: total, Limit: page.Limit, Offset: page.Offset},
		})
	}
}

// AdminOrdersGet returns one order with its item snapshot.
func AdminOrdersGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		order, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newOrderView(order))
	}
}

// AdminOrdersUpdateStatus moves an order along its lifecycle.
func AdminOrdersUpdateStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		order, err := svc.UpdateStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newOrderView(order))
	}
}
