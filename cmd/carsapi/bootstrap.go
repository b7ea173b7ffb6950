package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/car_insurance_app/internal/core/ports/repositories"
	"github.com/SscSPs/car_insurance_app/internal/platform/config"
	"github.com/SscSPs/car_insurance_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/car_insurance_app/internal/repositories/memory"
	"github.com/SscSPs/car_insurance_app/pkg/database"
)

// openRepositories builds the repository provider for the configured store
// driver. The returned cleanup releases whatever was opened.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; data is lost on exit")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	if migrate {
		logger.Info("Running database migrations...")
		if _, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
