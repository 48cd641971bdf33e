package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/khaldoun-digital/baytkum-backend/internal/auth"
	cartsvc "github.com/khaldoun-digital/baytkum-backend/internal/cart"
	"github.com/khaldoun-digital/baytkum-backend/internal/catalog"
	chatsvc "github.com/khaldoun-digital/baytkum-backend/internal/chat"
	checkoutsvc "github.com/khaldoun-digital/baytkum-backend/internal/checkout"
	"github.com/khaldoun-digital/baytkum-backend/internal/content"
	"github.com/khaldoun-digital/baytkum-backend/internal/orders"
	pkgauth "github.com/khaldoun-digital/baytkum-backend/pkg/auth"
	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
	"github.com/khaldoun-digital/baytkum-backend/pkg/db/models"
	"github.com/khaldoun-digital/baytkum-backend/pkg/enums"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
	"github.com/khaldoun-digital/baytkum-backend/pkg/pagination"
	"github.com/khaldoun-digital/baytkum-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubCatalogService struct{}

func (stubCatalogService) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	panic("unimplemented")
}

func (stubCatalogService) ListActive(ctx context.Context, category *string, page pagination.Params) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (stubCatalogService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	panic("unimplemented")
}

func (stubCatalogService) List(ctx context.Context, filter catalog.ListFilter, page pagination.Params) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (stubCatalogService) Create(ctx context.Context, input catalog.ProductInput) (*models.Product, error) {
	panic("unimplemented")
}

func (stubCatalogService) Update(ctx context.Context, id uuid.UUID, input catalog.ProductInput) (*models.Product, error) {
	panic("unimplemented")
}

func (stubCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

type stubCartService struct{}

func (stubCartService) Get(ctx context.Context, sessionID string) (cartsvc.State, error) {
	return cartsvc.State{}, nil
}

func (stubCartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (cartsvc.State, error) {
	panic("unimplemented")
}

func (stubCartService) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (cartsvc.State, error) {
	panic("unimplemented")
}

func (stubCartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (cartsvc.State, error) {
	panic("unimplemented")
}

func (stubCartService) Clear(ctx context.Context, sessionID string) error {
	panic("unimplemented")
}

type stubCheckoutService struct{}

func (stubCheckoutService) Submit(ctx context.Context, sessionID string, input checkoutsvc.SubmitInput) (*models.Order, error) {
	panic("unimplemented")
}

type stubOrdersService struct{}

func (stubOrdersService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	panic("unimplemented")
}

func (stubOrdersService) List(ctx context.Context, filter orders.ListFilter, page pagination.Params) ([]models.Order, int64, error) {
	return nil, 0, nil
}

func (stubOrdersService) UpdateStatus(ctx context.Context, id uuid.UUID, next enums.OrderStatus) (*models.Order, error) {
	panic("unimplemented")
}

type stubContentService struct{}

func (stubContentService) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	panic("unimplemented")
}

func (stubContentService) ListPublishedPosts(ctx context.Context, page pagination.Params) ([]models.BlogPost, int64, error) {
	return nil, 0, nil
}

func (stubContentService) ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return nil, nil
}

func (stubContentService) ListSettings(ctx context.Context) ([]models.Setting, error) {
	return nil, nil
}

func (stubContentService) CreatePost(ctx context.Context, input content.PostInput) (*models.BlogPost, error) {
	panic("unimplemented")
}

func (stubContentService) UpdatePost(ctx context.Context, id uuid.UUID, input content.PostInput) (*models.BlogPost, error) {
	panic("unimplemented")
}

func (stubContentService) DeletePost(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubContentService) ListPosts(ctx context.Context, page pagination.Params) ([]models.BlogPost, int64, error) {
	return nil, 0, nil
}

func (stubContentService) CreateTestimonial(ctx context.Context, input content.TestimonialInput) (*models.Testimonial, error) {
	panic("unimplemented")
}

func (stubContentService) UpdateTestimonial(ctx context.Context, id uuid.UUID, input content.TestimonialInput) (*models.Testimonial, error) {
	panic("unimplemented")
}

func (stubContentService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubContentService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return nil, nil
}

func (stubContentService) PutSetting(ctx context.Context, key string, value i18n.Text) (*models.Setting, error) {
	panic("unimplemented")
}

type stubChatService struct{}

func (stubChatService) Ask(ctx context.Context, lang i18n.Lang, history []chatsvc.Message) (string, error) {
	return "", nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, email, password string) (*authsvc.LoginResult, error) {
	panic("unimplemented")
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "test", Port: "0"},
		JWT:  config.JWTConfig{Secret: "secret", Issuer: "baytkum", ExpirationMinutes: 60},
		Cart: config.CartConfig{SessionCookie: "cart_session", TTL: 720 * time.Hour},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		(*redis.Client)(nil),
		nil,
		stubCatalogService{},
		stubCartService{},
		stubCheckoutService{},
		stubOrdersService{},
		stubContentService{},
		stubChatService{},
		stubAuthService{},
	)
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPublicProductsList(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCartMintsSessionCookie(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	cookies := resp.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "cart_session" {
			found = true
			if _, err := uuid.Parse(cookie.Value); err != nil {
				t.Fatalf("cookie value is not a uuid: %s", cookie.Value)
			}
		}
	}
	if !found {
		t.Fatal("expected cart_session cookie to be set")
	}
}

func TestCheckoutRequiresIdempotencyKey(t *testing.T) {
	router := newTestRouter(testConfig())
	body := `{"customerName":"Fatima","customerPhone":"96555512345","customerAddress":"Block 4, Salmiya"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without Idempotency-Key got %d", resp.Code)
	}
}

func TestAdminGroupRejectsMissingToken(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	token, err := pkgauth.MintAdminToken(cfg.JWT, time.Now(), "admin@baytkum.com")
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestLanguageQueryOverride(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/testimonials?lang=ar", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
