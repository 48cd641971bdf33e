package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/internal/catalog"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

// ProductsList serves the public catalog in the request language.
func ProductsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromContext(r.Context())
		page := pagination.FromQuery(r.URL.Query())

		var category *string
		if value := r.URL.Query().Get("category"); value != "" {
			category = &value
		}

		products, total, err := svc.ListActive(r.Context(), category, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, listEnvelope[productView]{
			Items: newProductViews(products, lang),
			Meta:  listMeta{Total: total, Limit: page.Limit, Offset: page.Offset},
		})
	}
}

// ProductsGet serves a single active product.
func ProductsGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.GetActiveByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newProductView(product, i18n.FromContext(r.Context())))
	}
}
