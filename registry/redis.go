package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	j "github.com/goccy/go-json"
	backend "github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces descriptor keys.
const DefaultRedisPrefix = "skema:schema:"

// RedisStore implements DocumentStore using Redis. Documents are stored as
// JSON strings under prefix+name; a set under prefix+"index" tracks names.
type RedisStore struct {
	client *backend.Client
	prefix string
}

type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore connects to the Redis server at address.
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(rdb, opts...)
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	store := &RedisStore{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *RedisStore) key(name string) string { return s.prefix + name }
func (s *RedisStore) indexKey() string       { return s.prefix + "index" }

func (s *RedisStore) Get(ctx context.Context, name string) (map[string]any, error) {
	val, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("registry: get %q from redis: %w", name, err)
	}
	return decodeDocument(ctx, val)
}

func (s *RedisStore) Put(ctx context.Context, name string, doc map[string]any) error {
	data, err := j.Marshal(doc)
	if err != nil {
		return fmt.Errorf("registry: encode %q: %w", name, err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(name), data, 0)
	pipe.SAdd(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("registry: put %q to redis: %w", name, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(name))
	pipe.SRem(ctx, s.indexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("registry: list schemas: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
