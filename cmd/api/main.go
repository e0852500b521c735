package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/galleypos/galleypos-backend/api/routes"
	"github.com/galleypos/galleypos-backend/internal/catalog"
	"github.com/galleypos/galleypos-backend/internal/payment"
	"github.com/galleypos/galleypos-backend/internal/session"
	"github.com/galleypos/galleypos-backend/pkg/config"
	"github.com/galleypos/galleypos-backend/pkg/db"
	"github.com/galleypos/galleypos-backend/pkg/logger"
	"github.com/galleypos/galleypos-backend/pkg/metrics"
	"github.com/galleypos/galleypos-backend/pkg/migrate"
	"github.com/galleypos/galleypos-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var (
		redisClient *redis.Client
		redisP      redis.Pinger
		idemStore   redis.IdempotencyStore
	)
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		redisP = redisClient
		idemStore = redisClient
	} else {
		logg.Warn(context.Background(), "redis disabled, tender idempotency protection is off")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	posMetrics := metrics.NewPOSMetrics(registry)

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()), dbClient, cfg.Catalog)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	if err := maybeSeed(context.Background(), cfg, logg, catalogService); err != nil {
		logg.Error(context.Background(), "failed to auto-seed catalog", err)
		os.Exit(1)
	}

	sessionService, err := session.NewService(
		session.NewStore(),
		catalogService,
		payment.NewStubProcessor(logg),
		posMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisP, idemStore, registry, catalogService, sessionService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// maybeSeed fills an empty catalog on dev boot when the flag is set, so
// the trolley has something to sell on first run.
func maybeSeed(ctx context.Context, cfg *config.Config, logg *logger.Logger, svc catalog.Service) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoSeed {
		return nil
	}
	products, err := svc.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}
	seeded, err := svc.Reseed(ctx)
	if err != nil {
		return err
	}
	logg.Info(logg.WithField(ctx, "products", len(seeded)), "catalog auto-seeded")
	return nil
}
