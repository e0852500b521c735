package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/galleypos/galleypos-backend/internal/catalog"
	"github.com/galleypos/galleypos-backend/pkg/config"
	"github.com/galleypos/galleypos-backend/pkg/db"
	"github.com/galleypos/galleypos-backend/pkg/logger"
)

// seed replaces the catalog with a fresh random trolley load. Meant for
// dev and bench setups; refuses to run against prod.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to reseed a prod catalog", fmt.Errorf("env is %s", cfg.App.Env))
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	svc, err := catalog.NewService(catalog.NewRepository(dbClient.DB()), dbClient, cfg.Catalog)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	products, err := svc.Reseed(ctx)
	if err != nil {
		logg.Error(ctx, "failed to reseed catalog", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "products", len(products))
	logg.Info(ctx, "catalog reseeded")
	for _, p := range products {
		fmt.Printf("%3d  %-24s stock=%2d  €%s  $%s  £%s\n",
			p.ID, p.Name, p.Stock,
			p.PriceEUR.StringFixed(2), p.PriceUSD.StringFixed(2), p.PriceGBP.StringFixed(2))
	}
}
