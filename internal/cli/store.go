package cli

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/leggettc18/devmarks/pkg/config"
	"github.com/leggettc18/devmarks/pkg/tokenstore"
)

// OpenStore builds the token store selected by cfg. The returned close
// function releases any connection the store holds.
func OpenStore(cfg *config.ClientConfig, log *zap.Logger) (tokenstore.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.TokenStore {
	case config.TokenStoreFile:
		return tokenstore.NewFileStore(cfg.TokenFile, log), noop, nil
	case config.TokenStoreMemory:
		return tokenstore.NewMemoryStore(), noop, nil
	case config.TokenStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		return tokenstore.NewRedisStore(rdb, 0, log), rdb.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}
