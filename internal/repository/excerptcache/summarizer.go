package excerptcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/db"
	"github.com/kailas-cloud/cmsdash/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "excerpt_cache:"

// store is the consumer interface for the excerpt cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEX(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSummarizer caches excerpt suggestions keyed by content hash.
type CachedSummarizer struct {
	inner      domain.Summarizer
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Summarizer,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSummarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSummarizer{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Summarize returns a cached suggestion or calls the inner summarizer.
// A hit reports zero token usage. Cache failures degrade to a miss.
func (c *CachedSummarizer) Summarize(ctx context.Context, text string) (domain.Summary, error) {
	key := cacheKey(text)

	if cached, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return domain.Summary{Text: cached}, nil
	}

	c.incCache("miss")

	sum, err := c.inner.Summarize(ctx, text)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summarize text: %w", err)
	}

	c.putToCache(ctx, key, sum.Text)
	return sum, nil
}

func (c *CachedSummarizer) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedSummarizer) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached excerpt", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *CachedSummarizer) putToCache(ctx context.Context, key, text string) {
	// An empty suggestion is not worth remembering.
	if text == "" {
		return
	}
	if err := c.store.SetEX(ctx, key, []byte(text), c.ttl); err != nil {
		c.logger.Warn("Failed to cache excerpt", zap.String("key", key), zap.Error(err))
	}
}
