package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/api/validators"
	"github.com/khaldoun-digital/baytkum-backend/internal/content"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

type postRequest struct {
	Slug          string    `json:"slug" validate:"required"`
	Title         i18n.Text `json:"title"`
	Excerpt       i18n.Text `json:"excerpt"`
	Body          i18n.Text `json:"body"`
	CoverImageURL *string   `json:"coverImageUrl"`
	IsPublished   *bool     `json:"isPublished"`
}

func (r postRequest) toInput() content.PostInput {
	return content.PostInput{
		Slug:          r.Slug,
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Body:          r.Body,
		CoverImageURL: r.CoverImageURL,
		IsPublished:   r.IsPublished,
	}
}

type testimonialRequest struct {
	AuthorName string    `json:"authorName" validate:"required"`
	Quote      i18n.Text `json:"quote"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	IsActive   *bool     `json:"isActive"`
	SortOrder  *int      `json:"sortOrder"`
}

func (r testimonialRequest) toInput() content.TestimonialInput {
	return content.TestimonialInput{
		AuthorName: r.AuthorName,
		Quote:      r.Quote,
		Rating:     r.Rating,
		IsActive:   r.IsActive,
		SortOrder:  r.SortOrder,
	}
}

type settingRequest struct {
	Value i18n.Text `json:"value"`
}

type adminTestimonialView struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Quote      i18n.Text `json:"quote"`
	Rating     int       `json:"rating"`
	IsActive   bool      `json:"isActive"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AdminBlogList lists every post, drafts included.
func AdminBlogList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.FromQuery(r.URL.Query())

		posts, total, err := svc.ListPosts(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]adminPostView, 0, len(posts))
		for i := range posts {
			views = append(views, newAdminPostView(&posts[i]))
		}
		responses.WriteSuccess(w, listEnvelope[adminPostView]{
			Items: views,
			Meta:  listMeta{Total: total, Limit: page.Limit, Offset: page.Offset},
		})
	}
}

// AdminBlogCreate creates a post.
func AdminBlogCreate(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		post, err := svc.CreatePost(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newAdminPostView(post))
	}
}

// AdminBlogUpdate replaces a post.
func AdminBlogUpdate(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid post id"))
			return
		}

		var payload postRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		post, err := svc.UpdatePost(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newAdminPostView(post))
	}
}

// AdminBlogDelete removes a post.
func AdminBlogDelete(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid post id"))
			return
		}

		if err := svc.DeletePost(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// AdminTestimonialsList lists every testimonial.
func AdminTestimonialsList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTestimonials(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]adminTestimonialView, 0, len(items))
		for _, item := range items {
			views = append(views, adminTestimonialView{
				ID:         item.ID,
				AuthorName: item.AuthorName,
				Quote:      item.Quote,
				Rating:     item.Rating,
				IsActive:   item.IsActive,
				SortOrder:  item.SortOrder,
				CreatedAt:  item.CreatedAt,
				UpdatedAt:  item.UpdatedAt,
			})
		}
		responses.WriteSuccess(w, views)
	}
}

// AdminTestimonialsCreate creates a testimonial.
func AdminTestimonialsCreate(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload testimonialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateTestimonial(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// AdminTestimonialsUpdate replaces a testimonial.
func AdminTestimonialsUpdate(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid testimonial id"))
			return
		}

		var payload testimonialRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateTestimonial(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// AdminTestimonialsDelete removes a testimonial.
func AdminTestimonialsDelete(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid testimonial id"))
			return
		}

		if err := svc.DeleteTestimonial(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// AdminSettingsPut creates or replaces one setting.
func AdminSettingsPut(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload settingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setting, err := svc.PutSetting(r.Context(), chi.URLParam(r, "key"), payload.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, setting)
	}
}
