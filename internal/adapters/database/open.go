// Package database opens the event store selected by configuration.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/aba_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/aba_ledger/internal/adapters/database/sqlite"
	"github.com/SscSPs/aba_ledger/internal/adapters/eventstore/memory"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/aba_ledger/internal/platform/config"
	pkgdb "github.com/SscSPs/aba_ledger/pkg/database"
)

// OpenEventStore opens the configured store, running migrations as needed.
// The returned close function releases its connections.
func OpenEventStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.EventStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Info("Using in-memory event store")
		return memory.NewStore(), func() {}, nil

	case config.StoreSQLite:
		db, err := pkgdb.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlite.NewJournalStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.Info("Using SQLite event store", slog.String("path", cfg.SQLitePath))
		return store, func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}, nil

	case config.StorePostgres:
		logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
		if err := pkgdb.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		pool, err := pkgdb.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using PostgreSQL event store")
		return pgsql.NewPgxJournalStore(pool), func() { pkgdb.ClosePgxPool(pool) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
