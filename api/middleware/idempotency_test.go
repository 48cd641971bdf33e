package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/khaldoun-digital/baytkum-backend/pkg/logger"
)

type fakeIdempotencyStore struct {
	values map[string]string
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{values: map[string]string{}}
}

func (f *fakeIdempotencyStore) Get(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", goredis.Nil
	}
	return value, nil
}

func (f *fakeIdempotencyStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func (f *fakeIdempotencyStore) IdempotencyKey(scope, id string) string {
	return "bk:idempotency:" + scope + ":" + id
}

func idempotentHandler(t *testing.T, store IdempotencyStore) (http.Handler, *int) {
	t.Helper()

	calls := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	})
	wrapped := Idempotency(store, time.Hour, logger.New(logger.Options{Output: io.Discard}))(inner)
	return wrapped, &calls
}

func postCheckout(handler http.Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	t.Parallel()

	handler, calls := idempotentHandler(t, newFakeIdempotencyStore())

	first := postCheckout(handler, "key-1", `{"customerName":"A"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", first.Code)
	}

	second := postCheckout(handler, "key-1", `{"customerName":"A"}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("expected replayed 201, got %d", second.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatal("replay must return the stored body")
	}
	if *calls != 1 {
		t.Fatalf("handler must run once, ran %d times", *calls)
	}
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	t.Parallel()

	handler, calls := idempotentHandler(t, newFakeIdempotencyStore())

	postCheckout(handler, "key-1", `{"customerName":"A"}`)
	rec := postCheckout(handler, "key-1", `{"customerName":"B"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if *calls != 1 {
		t.Fatalf("handler must not run for the conflicting replay, ran %d times", *calls)
	}
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	t.Parallel()

	handler, calls := idempotentHandler(t, newFakeIdempotencyStore())

	rec := postCheckout(handler, "", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if *calls != 0 {
		t.Fatal("handler must not run without an idempotency key")
	}
}
