package cmsdash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/db"
	dbRedis "github.com/kailas-cloud/cmsdash/internal/db/redis"
	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
	domstats "github.com/kailas-cloud/cmsdash/internal/domain/stats"
	componentrepo "github.com/kailas-cloud/cmsdash/internal/repository/component"
	pagerepo "github.com/kailas-cloud/cmsdash/internal/repository/page"
	componentuc "github.com/kailas-cloud/cmsdash/internal/usecase/component"
	healthuc "github.com/kailas-cloud/cmsdash/internal/usecase/health"
	pageuc "github.com/kailas-cloud/cmsdash/internal/usecase/page"
	statsuc "github.com/kailas-cloud/cmsdash/internal/usecase/stats"
	"github.com/kailas-cloud/cmsdash/internal/util/ident"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped for fakes in tests.
type componentUseCase interface {
	Create(ctx context.Context, d domcomp.Draft) (domcomp.Component, error)
	Get(ctx context.Context, id string) (domcomp.Component, error)
	List(ctx context.Context, q listing.Query) (listing.Page[domcomp.Component], error)
	Update(ctx context.Context, id string, p domcomp.Patch, expectedRevision int) (domcomp.Component, error)
	Delete(ctx context.Context, id string) error
}

type pageUseCase interface {
	Create(ctx context.Context, d dompage.Draft) (dompage.Page, error)
	Get(ctx context.Context, id string) (dompage.Page, error)
	GetBySlug(ctx context.Context, slug string) (dompage.Page, error)
	List(ctx context.Context, q listing.Query) (listing.Page[dompage.Page], error)
	Update(ctx context.Context, id string, p dompage.Patch, expectedRevision int) (dompage.Page, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (dompage.Page, error)
}

type statsUseCase interface {
	Get(ctx context.Context) (domstats.Snapshot, error)
}

// Client is the cmsdash SDK entry point.
type Client struct {
	store     db.Store
	compSvc   componentUseCase
	pageSvc   pageUseCase
	statsSvc  statsUseCase
	healthSvc healthUseCase
	closeFns  []func()
	obs       *observer
}

// New creates a cmsdash Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("cmsdash: database address required (use WithValkey or WithRedis)")
	}
	if _, err := ident.ParseStrategy(string(cfg.idStrategy)); err != nil {
		return nil, fmt.Errorf("cmsdash: %w", err)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("cmsdash: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

// createStore opens the rueidis-backed store. Redis and Valkey share the
// command surface the repositories use, so the driver only names the client.
func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			DB:         cfg.db,
			ClientName: "cmsdash-sdk",
		})
		if err != nil {
			return nil, fmt.Errorf("cmsdash: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("cmsdash: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	ids := ident.NewGenerator(cfg.idStrategy)
	compRepo := componentrepo.New(store)
	pageRepo := pagerepo.New(store)

	// The SDK logs through slog; services get a no-op zap logger.
	logger := zap.NewNop()

	statsSvc := statsuc.New(compRepo, pageRepo, logger, statsuc.Config{})
	compSvc := componentuc.New(compRepo, ids, logger).WithInvalidator(statsSvc)
	pageSvc := pageuc.New(pageRepo, ids, logger).
		WithComponents(compRepo).
		WithInvalidator(statsSvc)
	if cfg.defaultPageSize > 0 || cfg.maxPageSize > 0 {
		compSvc = compSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
		pageSvc = pageSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
	}

	return &Client{
		store:     store,
		compSvc:   compSvc,
		pageSvc:   pageSvc,
		statsSvc:  statsSvc,
		healthSvc: healthuc.New(store, nil),
		closeFns:  []func(){statsSvc.Close},
		obs:       obs,
	}
}

// Close stops background work and releases all resources.
func (c *Client) Close() {
	for _, fn := range c.closeFns {
		fn()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Components returns the component service.
func (c *Client) Components() *ComponentService {
	return &ComponentService{svc: c.compSvc, obs: c.obs}
}

// Pages returns the page service.
func (c *Client) Pages() *PageService {
	return &PageService{svc: c.pageSvc, obs: c.obs}
}

// Stats returns the statistics service.
func (c *Client) Stats() *StatsService {
	return &StatsService{svc: c.statsSvc, obs: c.obs}
}
