package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	"github.com/khaldoun-digital/baytkum-backend/internal/catalog"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

type productRequest struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Price       string    `json:"price" validate:"required"`
	ImageURL    *string   `json:"imageUrl"`
	Category    *string   `json:"category"`
	IsActive    *bool     `json:"isActive"`
	SortOrder   *int      `json:"sortOrder"`
}

func (r productRequest) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// AdminProductsList returns every product including inactive ones.
func AdminProductsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r.URL.Query())

		filter := catalog.ListFilter{}
		if value := r.URL.Query().Get("category"); value != "" {
			filter.Category = &value
		}

		products, total, err := svc.List(r.Context(), filter, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]adminProductView, 0, len(products))
		for i := range products {
			views = append(views, newAdminProductView(&products[i]))
		}
		responses.WriteSuccess(w, listEnvelope[adminProductView]{
			Items: views,
			Meta:  listMeta{Total: total, Limit: page.Limit, Offset: page.Offset},
		})
	}
}

// AdminProductsCreate creates a catalog product.
func AdminProductsCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newAdminProductView(product))
	}
}

// AdminProductsUpdate replaces a catalog product.
func AdminProductsUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newAdminProductView(product))
	}
}

// AdminProductsDelete removes a catalog product.
func AdminProductsDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "productID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
