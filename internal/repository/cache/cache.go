// Package cache decorates storage repositories with Redis-backed caching
// for the collection-wide aggregates. Filtered counts are never cached: a
// stale zero would spuriously trigger query relaxation.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
	"github.com/Paurakh977/HomeStay-MCP/internal/logger"
	"github.com/Paurakh977/HomeStay-MCP/internal/usecase/search"
)

// Store wraps a rueidis client with prefix and TTL settings.
type Store struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

// New creates a cache store.
func New(client rueidis.Client, prefix string, ttl time.Duration) *Store {
	return &Store{client: client, prefix: prefix, ttl: ttl}
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	cmd := s.client.B().Get().Key(s.prefix + key).Build()
	val, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			logger.FromContext(ctx).Debug("Cache read failed",
				zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (s *Store) set(ctx context.Context, key, val string) {
	cmd := s.client.B().Set().Key(s.prefix + key).Value(val).Ex(s.ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		logger.FromContext(ctx).Debug("Cache write failed",
			zap.String("key", key), zap.Error(err))
	}
}

// TotalCounter is the delegate for the unfiltered collection count.
type TotalCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

// CountAll wraps a TotalCounter, caching its result. Cache failures degrade
// to the delegate.
type CountAll struct {
	inner TotalCounter
	store *Store
}

// NewCountAll creates the total-count decorator.
func NewCountAll(inner TotalCounter, store *Store) *CountAll {
	return &CountAll{inner: inner, store: store}
}

const countAllKey = "count:all"

// CountAll returns the cached total, falling back to the delegate on a miss.
func (c *CountAll) CountAll(ctx context.Context) (int64, error) {
	if val, ok := c.store.get(ctx, countAllKey); ok {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n, nil
		}
	}
	n, err := c.inner.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	c.store.set(ctx, countAllKey, strconv.FormatInt(n, 10))
	return n, nil
}

// SearchRepository decorates a full search repository, routing only the
// unfiltered total through the cache. Count and Find always hit storage.
type SearchRepository struct {
	search.Repository
	counts *CountAll
}

// NewSearchRepository creates the search repository decorator.
func NewSearchRepository(inner search.Repository, store *Store) *SearchRepository {
	return &SearchRepository{
		Repository: inner,
		counts:     NewCountAll(inner, store),
	}
}

// CountAll returns the cached total.
func (r *SearchRepository) CountAll(ctx context.Context) (int64, error) {
	return r.counts.CountAll(ctx)
}

// StatsSource is the delegate for the aggregate snapshot.
type StatsSource interface {
	Stats(ctx context.Context) (homestay.Stats, error)
}

// Stats wraps a StatsSource, caching the snapshot as JSON.
type Stats struct {
	inner StatsSource
	store *Store
}

// NewStats creates the stats decorator.
func NewStats(inner StatsSource, store *Store) *Stats {
	return &Stats{inner: inner, store: store}
}

const statsKey = "stats"

// Stats returns the cached snapshot, falling back to the delegate on a miss.
func (s *Stats) Stats(ctx context.Context) (homestay.Stats, error) {
	if val, ok := s.store.get(ctx, statsKey); ok {
		var snapshot homestay.Stats
		if err := json.Unmarshal([]byte(val), &snapshot); err == nil {
			return snapshot, nil
		}
	}
	snapshot, err := s.inner.Stats(ctx)
	if err != nil {
		return homestay.Stats{}, err
	}
	if raw, err := json.Marshal(snapshot); err == nil {
		s.store.set(ctx, statsKey, string(raw))
	}
	return snapshot, nil
}
