package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/api/middleware"
	cartsvc "github.com/khaldoun-digital/baytkum-backend/internal/cart"
	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

type stubCart struct {
	state cartsvc.State
	err   error

	addedProduct uuid.UUID
	addedQty     int
}

func (s *stubCart) Get(ctx context.Context, sessionID string) (cartsvc.State, error) {
	return s.state, s.err
}

func (s *stubCart) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (cartsvc.State, error) {
	s.addedProduct = productID
	s.addedQty = qty
	return s.state, s.err
}

func (s *stubCart) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, qty int) (cartsvc.State, error) {
	return s.state, s.err
}

func (s *stubCart) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (cartsvc.State, error) {
	return s.state, s.err
}

func (s *stubCart) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func TestCartGetLocalizesLines(t *testing.T) {
	state := cartsvc.State{Lines: []cartsvc.Line{{
		ProductID: uuid.New(),
		Title:     i18n.Text{EN: "Deep Cleaning", AR: "تنظيف عميق"},
		UnitPrice: money.Fils(12500),
		Qty:       2,
	}}}
	handler := CartGet(&stubCart{state: state}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	ctx := middleware.WithCartSession(req.Context(), uuid.NewString())
	req = req.WithContext(i18n.WithLang(ctx, i18n.LangAR))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Lines) != 1 {
		t.Fatalf("expected 1 line got %d", len(envelope.Data.Lines))
	}
	if envelope.Data.Lines[0].Title != "تنظيف عميق" {
		t.Fatalf("unexpected title: %s", envelope.Data.Lines[0].Title)
	}
	if envelope.Data.Lines[0].LineTotal != "25.000" {
		t.Fatalf("unexpected line total: %s", envelope.Data.Lines[0].LineTotal)
	}
	if envelope.Data.Total != "25.000" {
		t.Fatalf("unexpected total: %s", envelope.Data.Total)
	}
}

func TestCartAddItemForwardsPayload(t *testing.T) {
	stub := &stubCart{}
	handler := CartAddItem(stub, nil)

	productID := uuid.New()
	body := `{"productId":"` + productID.String() + `","qty":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(middleware.WithCartSession(req.Context(), uuid.NewString()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.addedProduct != productID {
		t.Fatalf("unexpected product id: %s", stub.addedProduct)
	}
	if stub.addedQty != 3 {
		t.Fatalf("unexpected qty: %d", stub.addedQty)
	}
}

func TestCartAddItemAcceptsZeroQty(t *testing.T) {
	stub := &stubCart{}
	handler := CartAddItem(stub, nil)

	// Quantity normalization happens in the service, not in the handler.
	body := `{"productId":"` + uuid.NewString() + `","qty":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(middleware.WithCartSession(req.Context(), uuid.NewString()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.addedQty != 0 {
		t.Fatalf("expected qty forwarded untouched, got %d", stub.addedQty)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	stub := &stubCart{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := CartAddItem(stub, nil)

	body := `{"productId":"` + uuid.NewString() + `","qty":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	req = req.WithContext(middleware.WithCartSession(req.Context(), uuid.NewString()))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
