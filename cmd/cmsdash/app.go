package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/config"
	"github.com/kailas-cloud/cmsdash/internal/db"
	dbRedis "github.com/kailas-cloud/cmsdash/internal/db/redis"
	"github.com/kailas-cloud/cmsdash/internal/domain"
	logpkg "github.com/kailas-cloud/cmsdash/internal/logger"
	"github.com/kailas-cloud/cmsdash/internal/metrics"
	componentrepo "github.com/kailas-cloud/cmsdash/internal/repository/component"
	"github.com/kailas-cloud/cmsdash/internal/repository/excerptcache"
	pagerepo "github.com/kailas-cloud/cmsdash/internal/repository/page"
	openaiAssistant "github.com/kailas-cloud/cmsdash/internal/transport/openai"
	componentuc "github.com/kailas-cloud/cmsdash/internal/usecase/component"
	healthuc "github.com/kailas-cloud/cmsdash/internal/usecase/health"
	pageuc "github.com/kailas-cloud/cmsdash/internal/usecase/page"
	statsuc "github.com/kailas-cloud/cmsdash/internal/usecase/stats"
	"github.com/kailas-cloud/cmsdash/internal/util/ident"
	"github.com/kailas-cloud/cmsdash/internal/version"
)

// app is the composition root shared by serve and seed.
type app struct {
	env        string
	cfg        config.Config
	logger     *zap.Logger
	store      db.Store
	components *componentuc.Service
	pages      *pageuc.Service
	stats      *statsuc.Service
	health     *healthuc.Service
}

func newApp(ctx context.Context, env string) (*app, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	logger.Info("Starting cmsdash",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("id_strategy", cfg.IDs.Strategy),
		zap.Bool("assistant", cfg.Assistant.Enabled()),
	)

	// Redis and Valkey share the hash and string commands the repositories use.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.Database.Addrs,
		Username:   cfg.Database.Username,
		Password:   cfg.Database.Password,
		DB:         cfg.Database.DB,
		ClientName: "cmsdash",
	})
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Database.Driver, err)
	}

	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")

	ids := ident.NewGenerator(ident.Strategy(cfg.IDs.Strategy))
	compRepo := componentrepo.New(store)
	pageRepo := pagerepo.New(store)

	stats := statsuc.New(compRepo, pageRepo, logger.Named("stats"), statsuc.Config{
		RefreshInterval: cfg.Stats.RefreshInterval(),
		InvalidateDelay: cfg.Stats.InvalidateDelay(),
		ComputeTimeout:  cfg.Stats.ComputeTimeout(),
	})

	components := componentuc.New(compRepo, ids, logger.Named("components")).
		WithPagination(cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize).
		WithInvalidator(stats)
	pages := pageuc.New(pageRepo, ids, logger.Named("pages")).
		WithPagination(cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize).
		WithComponents(compRepo).
		WithInvalidator(stats)

	// A nil interface, not a typed nil pointer, keeps the assistant check off.
	var assistant healthuc.AssistantChecker
	if cfg.Assistant.Enabled() {
		sum := openaiAssistant.NewSummarizer(&openaiAssistant.Config{
			APIKey:      cfg.Assistant.APIKey,
			BaseURL:     cfg.Assistant.BaseURL,
			Model:       cfg.Assistant.Model,
			Prompt:      cfg.Assistant.Prompt,
			MaxTokens:   cfg.Assistant.MaxTokens,
			Temperature: cfg.Assistant.Temperature,
			User:        "cmsdash",
			Logger:      logger.Named("assistant"),
		})
		assistant = sum

		var suggest domain.Summarizer = sum
		if ttl := cfg.Assistant.CacheTTL(); ttl > 0 {
			suggest = excerptcache.New(sum, store, ttl, metrics.AssistantCacheTotal, logger.Named("excerpt_cache"))
		}
		pages = pages.WithSummarizer(suggest)
	}

	return &app{
		env:        env,
		cfg:        cfg,
		logger:     logger,
		store:      store,
		components: components,
		pages:      pages,
		stats:      stats,
		health:     healthuc.New(store, assistant),
	}, nil
}

// close stops pending stats work before the store goes away.
func (a *app) close() {
	a.stats.Close()
	a.store.Close()
	_ = a.logger.Sync()
}
