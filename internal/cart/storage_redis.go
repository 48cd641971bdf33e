package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pkgerrors "github.com/khaldoun-digital/baytkum-backend/pkg/errors"
	"github.com/khaldoun-digital/baytkum-backend/pkg/redis"
)

// RedisStorage keeps cart blobs in redis so carts survive restarts and
// load-balanced instances. TTL bounds how long an abandoned cart lives.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage wires cart persistence onto the shared redis client.
func NewRedisStorage(client *redis.Client, ttl time.Duration) (*RedisStorage, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisStorage{client: client, ttl: ttl}, nil
}

func (r *RedisStorage) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := r.client.Get(ctx, r.client.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart from redis")
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt blob is unrecoverable; treat it as an empty cart.
		return nil, nil
	}
	return &state, nil
}

func (r *RedisStorage) Save(ctx context.Context, sessionID string, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := r.client.Set(ctx, r.client.CartKey(sessionID), payload, r.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart to redis")
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.client.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart from redis")
	}
	return nil
}
