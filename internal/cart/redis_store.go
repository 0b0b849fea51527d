package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/kartzyhq/kartzy-backend/pkg/redis"
)

// RedisStore persists the snapshot blob in a single namespaced slot key,
// one per cart owner, so a cart survives process restarts and follows
// the account across devices.
type RedisStore struct {
	client *pkgredis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore builds a store writing to the slot for the given owner.
func NewRedisStore(client *pkgredis.Client, owner string, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if owner == "" {
		return nil, fmt.Errorf("cart owner required")
	}
	return &RedisStore{
		client: client,
		key:    client.CartSlotKey(owner),
		ttl:    ttl,
	}, nil
}

func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *RedisStore) Save(ctx context.Context, blob []byte) error {
	return s.client.Set(ctx, s.key, string(blob), s.ttl)
}
