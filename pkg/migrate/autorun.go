package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/pricetracker-backend/pkg/config"
	"github.com/angelmondragon/pricetracker-backend/pkg/db"
	"github.com/angelmondragon/pricetracker-backend/pkg/logger"
)

// MaybeRun applies the schema at startup unless the auto-migrate flag is off.
// A failure here is fatal to the caller: the service cannot run without its
// tables.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithField(ctx, "driver", cfg.DB.Driver)
	logg.Info(ctx, "applying schema migrations")

	if err := Run(ctx, sqlDB, cfg.DB.Driver); err != nil {
		return err
	}

	logg.Info(ctx, "schema migrations completed")
	return nil
}
