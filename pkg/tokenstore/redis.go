package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisKey is the key the token lives under.
const RedisKey = "devmarks:" + TokenKey

// RedisStore shares the token between machines through Redis. Lookup errors
// are logged and treated as no token.
type RedisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
	log *zap.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps rdb. A zero ttl stores the token without expiry.
func NewRedisStore(rdb redis.UniversalClient, ttl time.Duration, log *zap.Logger) *RedisStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{rdb: rdb, ttl: ttl, log: log}
}

func (s *RedisStore) AccessToken(ctx context.Context) (string, bool) {
	token, err := s.rdb.Get(ctx, RedisKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("token lookup failed", zap.String("key", RedisKey), zap.Error(err))
		}
		return "", false
	}
	return token, token != ""
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	if err := s.rdb.Set(ctx, RedisKey, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, RedisKey).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
