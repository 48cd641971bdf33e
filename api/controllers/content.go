package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khaldoun-digital/baytkum-backend/api/responses"
	"github.com/khaldoun-digital/baytkum-backend/internal/content"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
)

// BlogList serves published posts in the request language.
func BlogList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromContext(r.Context())
		page := pagination.FromQuery(r.URL.Query())

		posts, total, err := svc.ListPublishedPosts(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]postView, 0, len(posts))
		for i := range posts {
			views = append(views, newPostView(&posts[i], lang, false))
		}
		responses.WriteSuccess(w, listEnvelope[postView]{
			Items: views,
			Meta:  listMeta{Total: total, Limit: page.Limit, Offset: page.Offset},
		})
	}
}

// BlogGet serves one published post by slug, body included.
func BlogGet(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := svc.GetPublishedPostBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newPostView(post, i18n.FromContext(r.Context()), true))
	}
}

// TestimonialsList serves the active testimonials.
func TestimonialsList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActiveTestimonials(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newTestimonialViews(items, i18n.FromContext(r.Context())))
	}
}

// SettingsList serves the site settings in the request language.
func SettingsList(svc content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.FromContext(r.Context())

		settings, err := svc.ListSettings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view := make(map[string]string, len(settings))
		for _, setting := range settings {
			view[setting.Key] = setting.Value.In(lang)
		}
		responses.WriteSuccess(w, view)
	}
}
