package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khaldoun-digital/baytkum-backend/api/controllers"
	"github.com/khaldoun-digital/baytkum-backend/api/middleware"
	authsvc "github.com/khaldoun-digital/baytkum-backend/internal/auth"
	cartsvc "github.com/khaldoun-digital/baytkum-backend/internal/cart"
	"github.com/khaldoun-digital/baytkum-backend/internal/catalog"
	chatsvc "github.com/khaldoun-digital/baytkum-backend/internal/chat"
	checkoutsvc "github.com/khaldoun-digital/baytkum-backend/internal/checkout"
	"github.com/khaldoun-digital/baytkum-backend/internal/content"
	"github.com/khaldoun-digital/baytkum-backend/internal/orders"
	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	"github.com/khaldoun-digital/baytkum-backend/pkg/db"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/metrics"
	"github.com/khaldoun-digital/baytkum-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	ordersService orders.Service,
	contentService content.Service,
	chatService chatsvc.Service,
	authService authsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
		middleware.CORS(cfg.CORS),
		middleware.Language(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(catalogService, logg))
			r.Get("/{productID}", controllers.ProductsGet(catalogService, logg))
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", controllers.BlogList(contentService, logg))
			r.Get("/{slug}", controllers.BlogGet(contentService, logg))
		})
		r.Get("/testimonials", controllers.TestimonialsList(contentService, logg))
		r.Get("/settings", controllers.SettingsList(contentService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(cfg.Cart, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(cartService, logg))
				r.Post("/items", controllers.CartAddItem(cartService, logg))
				r.Patch("/items/{productID}", controllers.CartSetQuantity(cartService, logg))
				r.Delete("/items/{productID}", controllers.CartRemoveItem(cartService, logg))
				r.Delete("/", controllers.CartClear(cartService, logg))
			})

			r.With(middleware.Idempotency(redisClient, cfg.Checkout.IdempotencyTTL, logg)).
				Post("/checkout", controllers.CheckoutSubmit(checkoutService, logg))
		})

		r.With(middleware.RateLimit(redisClient, "chat", cfg.Chat.RateLimit, cfg.Chat.RateWindow, logg)).
			Post("/chat", controllers.ChatAsk(chatService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.RateLimit(redisClient, "login", 10, time.Minute, logg)).
			Post("/auth/login", controllers.AuthLogin(authService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminProductsList(catalogService, logg))
				r.Post("/", controllers.AdminProductsCreate(catalogService, logg))
				r.Put("/{productID}", controllers.AdminProductsUpdate(catalogService, logg))
				r.Delete("/{productID}", controllers.AdminProductsDelete(catalogService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminOrdersList(ordersService, logg))
				r.Get("/{orderID}", controllers.AdminOrdersGet(ordersService, logg))
				r.Put("/{orderID}/status", controllers.AdminOrdersUpdateStatus(ordersService, logg))
			})

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", controllers.AdminBlogList(contentService, logg))
				r.Post("/", controllers.AdminBlogCreate(contentService, logg))
				r.Put("/{postID}", controllers.AdminBlogUpdate(contentService, logg))
				r.Delete("/{postID}", controllers.AdminBlogDelete(contentService, logg))
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", controllers.AdminTestimonialsList(contentService, logg))
				r.Post("/", controllers.AdminTestimonialsCreate(contentService, logg))
				r.Put("/{testimonialID}", controllers.AdminTestimonialsUpdate(contentService, logg))
				r.Delete("/{testimonialID}", controllers.AdminTestimonialsDelete(contentService, logg))
			})

			r.Put("/settings/{key}", controllers.AdminSettingsPut(contentService, logg))
		})
	})

	return r
}
