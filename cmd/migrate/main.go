package main

import (
	"context"
	"os"

	"github.com/angelmondragon/pricetracker-backend/pkg/config"
	"github.com/angelmondragon/pricetracker-backend/pkg/db"
	"github.com/angelmondragon/pricetracker-backend/pkg/logger"
	"github.com/angelmondragon/pricetracker-backend/pkg/migrate"
	"github.com/joho/godotenv"
)

// Applies the embedded schema migrations and exits. Useful in environments
// where the api process runs with auto-migrate disabled.
func main() {
	logg := logger.New(logger.Options{ServiceName: "migrate"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to extract sql.DB", err)
		os.Exit(1)
	}

	if err := migrate.Run(ctx, sqlDB, cfg.DB.Driver); err != nil {
		logg.Error(ctx, "schema migration failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "schema migration complete")
}
