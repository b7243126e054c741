package location

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"bodygraph/internal/platform/metrics"
)

const geocodeKeyPrefix = "geo:place:"

// Cached is a read-through Redis decorator over a Resolver. Geocoding is the
// only network call whose answer never changes, so hits skip the upstream
// entirely.
type Cached struct {
	inner   Resolver
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// CachedOption configures the decorator.
type CachedOption func(*Cached)

// WithMetrics attaches hit/miss counters.
func WithMetrics(m *metrics.Metrics) CachedOption {
	return func(c *Cached) { c.metrics = m }
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) CachedOption {
	return func(c *Cached) { c.logger = l }
}

// NewCached wraps a resolver with a Redis cache.
func NewCached(inner Resolver, client *redis.Client, ttl time.Duration, opts ...CachedOption) *Cached {
	c := &Cached{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func cacheKey(place string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(place))
}

func (c *Cached) Geocode(ctx context.Context, place string) (Location, error) {
	key := cacheKey(place)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var loc Location
		if err := json.Unmarshal([]byte(raw), &loc); err == nil {
			if c.metrics != nil {
				c.metrics.GeocodeCacheHits.Inc()
			}
			return loc, nil
		}
		// Corrupt entry, fall through to the resolver and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "geocode cache read failed", "place", place, "error", err)
	}

	if c.metrics != nil {
		c.metrics.GeocodeCacheMiss.Inc()
	}

	loc, err := c.inner.Geocode(ctx, place)
	if err != nil {
		return Location{}, err
	}

	if encoded, err := json.Marshal(loc); err == nil {
		if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "geocode cache write failed", "place", place, "error", err)
		}
	}
	return loc, nil
}
