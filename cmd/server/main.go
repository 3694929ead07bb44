package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/TetianaVeremchuk/product-categories/app/browse"
	"github.com/TetianaVeremchuk/product-categories/app/cache"
	"github.com/TetianaVeremchuk/product-categories/app/database"
	"github.com/TetianaVeremchuk/product-categories/app/metrics"
	"github.com/TetianaVeremchuk/product-categories/app/server"
	"github.com/TetianaVeremchuk/product-categories/config"
	"github.com/TetianaVeremchuk/product-categories/logger"
	"github.com/TetianaVeremchuk/product-categories/models"
)

const serviceName = "product-categories"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(serviceName)
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.InitLogger(cfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("Starting "+serviceName, cfg.LogFields()...)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(cfg.Metrics.Prefix, reg)

	source, err := newFixtureSource(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to set up fixture source", zap.Error(err))
	}

	viewCache, closeCache, err := newCache(cfg)
	if err != nil {
		log.Fatal("Failed to set up view model cache", zap.Error(err))
	}
	defer closeCache()

	catalog := browse.NewCatalog(source, viewCache,
		browse.WithTTL(cfg.Cache.TTL),
		browse.WithLogger(log),
		browse.WithMetrics(m),
	)

	// Refuse to serve a catalog whose references do not resolve.
	products, err := catalog.Products(ctx)
	if err != nil {
		log.Fatal("Catalog fixtures are inconsistent", zap.Error(err))
	}
	log.Info("Catalog ready", zap.Int("products", len(products)))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.NewHandler(catalog, log, m, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}

func newFixtureSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (browse.FixtureSource, error) {
	seed := models.NewSeedSource()
	if cfg.Fixtures.Source == config.SourceSeed {
		return seed, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Database connection established", zap.String("driver", cfg.DB.Driver))

	repo := models.NewFixturesRepository(db)
	if cfg.Fixtures.Seed {
		f, err := seed.Load(ctx)
		if err != nil {
			return nil, err
		}
		seeded, err := repo.SeedIfEmpty(ctx, f)
		if err != nil {
			return nil, err
		}
		if seeded {
			log.Info("Seeded empty database with bundled fixtures")
		}
	}
	return repo, nil
}

func newCache(cfg *config.Config) (cache.Cache, func(), error) {
	switch cfg.Cache.Driver {
	case config.CacheRedis:
		r, err := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.KeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { r.Close() }, nil
	case config.CacheNone:
		return nil, func() {}, nil
	default:
		return cache.NewMemory(), func() {}, nil
	}
}
