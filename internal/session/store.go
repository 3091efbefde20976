package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/client-registry/internal/domain"
)

// ErrNotFound is returned when a session id is absent from the store.
var ErrNotFound = errors.New("session not found")

// Store keeps active session markers keyed by session id.
type Store interface {
	Save(ctx context.Context, id string, marker domain.SessionMarker, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.SessionMarker, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "session:"

// RedisStore persists session markers in Redis with the session TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, id string, marker domain.SessionMarker, ttl time.Duration) error {
	payload, err := json.Marshal(marker)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+id, payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.SessionMarker, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var marker domain.SessionMarker
	if err := json.Unmarshal(payload, &marker); err != nil {
		return nil, err
	}
	return &marker, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
