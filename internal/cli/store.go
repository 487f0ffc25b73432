package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/fsmgen/internal/config"
	"github.com/aretw0/fsmgen/pkg/adapters/file"
	"github.com/aretw0/fsmgen/pkg/adapters/memory"
	"github.com/aretw0/fsmgen/pkg/adapters/redis"
	"github.com/aretw0/fsmgen/pkg/ports"
)

// Backend bundles a store with the locker that matches it.
type Backend struct {
	Store  ports.ProjectStore
	Locker ports.Locker
	close  func() error
}

// Close releases connections held by the backend.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend builds the configured project store.
func OpenBackend(cfg config.StoreConfig, logger *slog.Logger) (*Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logger.Debug("Using in-memory project store")
		return &Backend{Store: memory.NewStore(), Locker: memory.NewLocker()}, nil

	case config.BackendFile, "":
		logger.Debug("Using file project store", "dir", cfg.Dir)
		return &Backend{Store: file.New(cfg.Dir), Locker: memory.NewLocker()}, nil

	case config.BackendRedis:
		ttl, err := cfg.TTLDuration()
		if err != nil {
			return nil, err
		}
		opts := []redis.Option{redis.WithTTL(ttl)}
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)
		logger.Debug("Using redis project store", "addr", cfg.RedisAddr, "prefix", store.Prefix(), "ttl", ttl)
		return &Backend{
			Store:  store,
			Locker: redis.NewLocker(store.Client(), store.Prefix()),
			close:  store.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
