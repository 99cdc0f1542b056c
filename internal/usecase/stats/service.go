// Package stats keeps a cached dashboard statistics snapshot fresh without
// recomputing it on every read or write.
package stats

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	domstats "github.com/kailas-cloud/cmsdash/internal/domain/stats"
	"github.com/kailas-cloud/cmsdash/internal/metrics"
	"github.com/kailas-cloud/cmsdash/internal/util/ratelimit"
)

// Refresh triggers, used as the "trigger" metric label.
const (
	TriggerInitial     = "initial"
	TriggerThrottled   = "throttled"
	TriggerInvalidated = "invalidated"
)

// Defaults applied by New for zero Config fields.
const (
	DefaultRefreshInterval = 5 * time.Second
	DefaultInvalidateDelay = 500 * time.Millisecond
	DefaultComputeTimeout  = 10 * time.Second
)

// Config tunes refresh timing.
type Config struct {
	// RefreshInterval is the throttle window for refreshes triggered by reads.
	RefreshInterval time.Duration
	// InvalidateDelay is the debounce wait after the last write.
	InvalidateDelay time.Duration
	// ComputeTimeout bounds a recompute started by Invalidate.
	ComputeTimeout time.Duration
	// Clock drives the rate limiters; nil means the wall clock.
	Clock ratelimit.Clock
}

type refreshRequest struct {
	ctx     context.Context
	trigger string
	err     *error
}

// Service serves the statistics snapshot.
type Service struct {
	components ComponentSource
	pages      PageSource
	logger     *zap.Logger
	clock      ratelimit.Clock
	timeout    time.Duration

	refresh    *ratelimit.Throttler[refreshRequest]
	invalidate *ratelimit.Debouncer[string]
	closed     atomic.Bool

	// gen numbers recomputes in start order; applied is the newest stored.
	gen      atomic.Uint64
	mu       sync.RWMutex
	applied  uint64
	snapshot domstats.Snapshot
}

// New creates a stats service.
func New(components ComponentSource, pages PageSource, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.InvalidateDelay <= 0 {
		cfg.InvalidateDelay = DefaultInvalidateDelay
	}
	if cfg.ComputeTimeout <= 0 {
		cfg.ComputeTimeout = DefaultComputeTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = ratelimit.SystemClock
	}

	s := &Service{
		components: components,
		pages:      pages,
		logger:     logger,
		clock:      cfg.Clock,
		timeout:    cfg.ComputeTimeout,
	}
	s.refresh = ratelimit.NewThrottler(s.runRefresh, cfg.RefreshInterval, ratelimit.WithClock(cfg.Clock))
	s.invalidate = ratelimit.NewDebouncer(s.runInvalidated, cfg.InvalidateDelay, ratelimit.WithClock(cfg.Clock))
	return s
}

// Get returns the latest snapshot. The first call computes it; later calls
// refresh it at most once per refresh interval and otherwise serve the cache.
func (s *Service) Get(ctx context.Context) (domstats.Snapshot, error) {
	if _, ok := s.cached(); ok {
		s.refresh.Call(refreshRequest{ctx: ctx, trigger: TriggerThrottled})
		snap, _ := s.cached()
		return snap, nil
	}

	var err error
	s.refresh.Reset()
	if !s.refresh.Call(refreshRequest{ctx: ctx, trigger: TriggerInitial, err: &err}) {
		// another caller opened the window first
		err = s.recompute(ctx, TriggerInitial)
	}
	if err != nil {
		return domstats.Snapshot{}, err
	}
	snap, _ := s.cached()
	return snap, nil
}

// Invalidate schedules a recompute. Calls arriving within the debounce
// delay collapse into one recompute.
func (s *Service) Invalidate(reason string) {
	if s.closed.Load() {
		return
	}
	s.invalidate.Call(reason)
}

// Close drops any pending recompute. Later invalidations are ignored.
func (s *Service) Close() {
	s.closed.Store(true)
	if s.invalidate.Cancel() {
		s.logger.Debug("stats recompute cancelled on close")
	}
}

func (s *Service) cached() (domstats.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, !s.snapshot.IsZero()
}

func (s *Service) runRefresh(r refreshRequest) {
	err := s.recompute(r.ctx, r.trigger)
	if r.err != nil {
		*r.err = err
		return
	}
	if err != nil {
		s.logger.Warn("stats refresh failed, serving cached snapshot", zap.Error(err))
	}
}

// runInvalidated runs on the debounce timer goroutine, detached from any request.
func (s *Service) runInvalidated(reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.recompute(ctx, TriggerInvalidated); err != nil {
		s.logger.Warn("stats recompute failed", zap.String("reason", reason), zap.Error(err))
		return
	}
	s.logger.Debug("stats recomputed", zap.String("reason", reason))
}

func (s *Service) recompute(ctx context.Context, trigger string) error {
	gen := s.gen.Add(1)
	start := s.clock.Now()
	snap, err := s.compute(ctx, start)
	metrics.StatsRefreshTotal.WithLabelValues(trigger, metrics.Result(err)).Inc()
	metrics.StatsRefreshDuration.Observe(s.clock.Now().Sub(start).Seconds())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.applied {
		return nil // a later recompute read newer data and already landed
	}
	s.applied = gen
	s.snapshot = snap
	return nil
}

// compute stamps the snapshot with asOf, taken before any list is read.
func (s *Service) compute(ctx context.Context, asOf time.Time) (domstats.Snapshot, error) {
	components, err := s.components.List(ctx)
	if err != nil {
		return domstats.Snapshot{}, fmt.Errorf("list components: %w", err)
	}
	pages, err := s.pages.List(ctx)
	if err != nil {
		return domstats.Snapshot{}, fmt.Errorf("list pages: %w", err)
	}
	return domstats.Compute(components, pages, asOf), nil
}
