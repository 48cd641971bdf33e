package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khaldoun-digital/baytkum-backend/pkg/config"
)

type fakeStore struct {
	values  map[string]string
	expires map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}, expires: map[string]time.Duration{}}
}

func (f *fakeStore) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.values[key] = toString(value)
	f.expires[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if value, ok := f.values[key]; ok {
		return redis.NewStringResult(value, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if _, exists := f.values[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = toString(value)
	f.expires[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeStore) Incr(ctx context.Context, key string) *redis.IntCmd {
	current := int64(0)
	if raw, ok := f.values[key]; ok && raw != "" {
		for _, r := range raw {
			current = current*10 + int64(r-'0')
		}
	}
	current++
	f.values[key] = itoa(current)
	return redis.NewIntResult(current, nil)
}

func (f *fakeStore) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expires[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	removed := int64(0)
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return ""
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	t.Parallel()

	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error for missing url/address")
	}
	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", PoolSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" || opts.PoolSize != 5 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestKeyNamespacing(t *testing.T) {
	t.Parallel()

	client := NewWithCmdable(newFakeStore())
	if got := client.CartKey("abc"); got != "bk:cart:abc" {
		t.Fatalf("unexpected cart key: %s", got)
	}
	if got := client.IdempotencyKey("checkout", "k1"); got != "bk:idempotency:checkout:k1" {
		t.Fatalf("unexpected idempotency key: %s", got)
	}
	if got := client.RateLimitKey("chat:sess"); got != "bk:rate_limit:chat:sess" {
		t.Fatalf("unexpected rate limit key: %s", got)
	}
}

func TestFixedWindowAllow(t *testing.T) {
	t.Parallel()

	client := NewWithCmdable(newFakeStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := client.FixedWindowAllow(ctx, "chat:sess", 3, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, count, err := client.FixedWindowAllow(ctx, "chat:sess", 3, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatal("fourth request should be limited")
	}
	if count != 4 {
		t.Fatalf("unexpected count: %d", count)
	}
}

func TestSetNXSecondWriteLoses(t *testing.T) {
	t.Parallel()

	client := NewWithCmdable(newFakeStore())
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "k", "first", time.Minute)
	if err != nil || !ok {
		t.Fatalf("first SetNX: ok=%v err=%v", ok, err)
	}
	ok, err = client.SetNX(ctx, "k", "second", time.Minute)
	if err != nil {
		t.Fatalf("second SetNX: %v", err)
	}
	if ok {
		t.Fatal("second SetNX should not win")
	}
	value, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "first" {
		t.Fatalf("unexpected value: %s", value)
	}
}
