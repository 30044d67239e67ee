package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"doctorsportal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cachePrefix      = "availability:"
	generationPrefix = "availability:gen:"
	// generationTTL must outlive any cached view so an expired counter never
	// resurrects entries written under an earlier generation.
	generationTTL = 24 * time.Hour
)

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("availability cache miss")

// Cache is the key/value store behind CachedCalculator.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr atomically increments the integer at key, creating it at 1.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RedisCache adapts a go-redis client to Cache.
type RedisCache struct {
	Client *redis.Client
}

func (r RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (r RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

func (r RedisCache) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// CachedCalculator serves Compute results from Cache for up to TTL. Entries are
// keyed by the date's generation, so a view computed before an invalidation is
// written under a key no reader looks up again. Cache failures never fail a
// request; they fall through to Next.
type CachedCalculator struct {
	Next     Calculator
	Strategy string
	Cache    Cache
	TTL      time.Duration
	Logger   *zap.Logger
}

func NewCachedCalculator(next Calculator, strategy string, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCalculator{Next: next, Strategy: strategy, Cache: cache, TTL: ttl, Logger: logger}
}

func (c *CachedCalculator) Compute(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	gen, err := generation(ctx, c.Cache, date)
	if err != nil {
		c.Logger.Warn("availability generation read failed", zap.String("date", date), zap.Error(err))
		return c.Next.Compute(ctx, date)
	}
	key := cacheKey(c.Strategy, date, gen)

	raw, err := c.Cache.Get(ctx, key)
	switch {
	case err == nil:
		var views []models.AvailabilityView
		if jsonErr := json.Unmarshal(raw, &views); jsonErr == nil {
			return views, nil
		}
		c.Logger.Warn("discarding undecodable availability cache entry", zap.String("key", key))
	case !errors.Is(err, ErrCacheMiss):
		c.Logger.Warn("availability cache read failed", zap.String("key", key), zap.Error(err))
	}

	views, err := c.Next.Compute(ctx, date)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(views); err == nil {
		if err := c.Cache.Set(ctx, key, data, c.TTL); err != nil {
			c.Logger.Warn("availability cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return views, nil
}

// Invalidator drops cached availability for a date.
type Invalidator interface {
	Invalidate(ctx context.Context, date string) error
}

// CacheInvalidator bumps the date's generation, retiring the entries of every
// strategy at once, including refills still in flight.
type CacheInvalidator struct {
	Cache Cache
}

func (i CacheInvalidator) Invalidate(ctx context.Context, date string) error {
	_, err := i.Cache.Incr(ctx, generationPrefix+date, generationTTL)
	return err
}

// generation returns the current generation of date; an absent counter is 0.
func generation(ctx context.Context, cache Cache, date string) (int64, error) {
	raw, err := cache.Get(ctx, generationPrefix+date)
	if errors.Is(err, ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	gen, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid availability generation %q: %w", raw, err)
	}
	return gen, nil
}

func cacheKey(strategy, date string, gen int64) string {
	return cachePrefix + strategy + ":" + strconv.FormatInt(gen, 10) + ":" + date
}
