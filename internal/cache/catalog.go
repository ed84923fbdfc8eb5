package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Keys of the cached public listings.
const (
	KeyCourses     = "catalog:courses"
	KeyInternships = "catalog:internships"
	KeyWebinars    = "catalog:webinars"
)

// ErrMiss is returned by a Store when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the byte-level backend of the catalog cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// LookupRecorder observes hits and misses.
type LookupRecorder interface {
	RecordCacheLookup(key string, hit bool)
}

type redisStore struct {
	client redis.Cmdable
}

// NewRedisStore adapts a go-redis client to Store.
func NewRedisStore(client redis.Cmdable) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Catalog is a read-through cache for listings that change only on admin
// writes. Backend errors are logged and the loader result is served, so an
// unavailable Redis never fails a request.
type Catalog struct {
	store    Store
	ttl      time.Duration
	logger   *zap.Logger
	recorder LookupRecorder
}

// NewCatalog builds the cache. A nil store disables caching.
func NewCatalog(store Store, ttl time.Duration, logger *zap.Logger, recorder LookupRecorder) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{store: store, ttl: ttl, logger: logger, recorder: recorder}
}

// Fetch returns the cached value for key, calling load and populating the
// cache on a miss.
func Fetch[T any](ctx context.Context, c *Catalog, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || c.store == nil {
		return load(ctx)
	}

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var v T
		jsonErr := json.Unmarshal(raw, &v)
		if jsonErr == nil {
			c.record(key, true)
			return v, nil
		}
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(jsonErr))
	case !errors.Is(err, ErrMiss):
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	c.record(key, false)

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

// Invalidate drops keys after a write to the underlying tables.
func (c *Catalog) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.store == nil || len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (c *Catalog) record(key string, hit bool) {
	if c.recorder != nil {
		c.recorder.RecordCacheLookup(key, hit)
	}
}
