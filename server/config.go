package server

import (
	"fmt"

	"github.com/reoring/skema/middleware"
	"github.com/reoring/skema/registry"
)

// Config describes how the validation service is run.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`
	// Store selects the descriptor backend: "memory" or "redis".
	Store string `mapstructure:"store"`
	// RedisAddr, RedisPassword, RedisDB and RedisPrefix configure the redis backend.
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		Store:        "memory",
		RedisPrefix:  registry.DefaultRedisPrefix,
		MaxBodyBytes: 1 << 20,
	}
}

// OpenStore builds the descriptor store selected by cfg. The returned close
// function releases backend connections.
func OpenStore(cfg Config) (registry.DocumentStore, func() error, error) {
	switch cfg.Store {
	case "", "memory":
		return registry.NewMemoryStore(), func() error { return nil }, nil
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, nil, fmt.Errorf("server: redis store needs an address")
		}
		prefix := cfg.RedisPrefix
		if prefix == "" {
			prefix = registry.DefaultRedisPrefix
		}
		store := registry.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, registry.WithPrefix(prefix))
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("server: unknown store %q", cfg.Store)
}

// NewFromConfig opens the configured store and builds a server on it.
// Options passed by the caller are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Server, func() error, error) {
	store, closeFn, err := OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	opt := middleware.DefaultParseOpt()
	if cfg.MaxBodyBytes > 0 {
		opt.MaxBytes = cfg.MaxBodyBytes
	}
	all := append([]Option{WithStore(store), WithParseOpt(opt)}, opts...)
	return New(all...), closeFn, nil
}
