package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cesargomez89/soundscout/internal/cache"
	"github.com/cesargomez89/soundscout/internal/domain"
	"github.com/cesargomez89/soundscout/internal/metrics"
)

type cacheKey struct {
	phrase string
	mode   domain.SearchMode
}

// CachedProvider memoizes provider responses per (phrase, mode) for a fixed
// freshness window. Failed calls are never cached.
type CachedProvider struct {
	provider Provider
	cache    *cache.TTL[cacheKey, []domain.RawRecord]
	logger   *slog.Logger
}

func NewCachedProvider(provider Provider, cacheTTL time.Duration, clock cache.Clock, logger *slog.Logger) *CachedProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProvider{
		provider: provider,
		cache:    cache.NewTTL[cacheKey, []domain.RawRecord](cacheTTL, clock),
		logger:   logger,
	}
}

func (c *CachedProvider) Search(ctx context.Context, phrase string, mode domain.SearchMode) ([]domain.RawRecord, error) {
	key := cacheKey{phrase: phrase, mode: mode}

	if records, ok := c.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues(string(mode)).Inc()
		c.logger.Debug("search cache hit", "phrase", phrase, "mode", mode, "records", len(records))
		return records, nil
	}
	metrics.CacheMissesTotal.WithLabelValues(string(mode)).Inc()

	start := time.Now()
	records, err := c.provider.Search(ctx, phrase, mode)
	metrics.ProviderRequestDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(string(mode), "error").Inc()
		return nil, err
	}
	metrics.ProviderRequestsTotal.WithLabelValues(string(mode), "ok").Inc()

	c.cache.Set(key, records)
	return records, nil
}

// ClearCache drops every memoized response.
func (c *CachedProvider) ClearCache() {
	c.cache.Clear()
}

var _ Provider = (*CachedProvider)(nil)
