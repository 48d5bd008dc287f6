// Package data opens the ledger store selected by configuration.
package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cubos-banking-ledger/internal/config"
	filestore "github.com/cubos-banking-ledger/internal/data/file"
	memstore "github.com/cubos-banking-ledger/internal/data/memory"
	mongostore "github.com/cubos-banking-ledger/internal/data/mongo"
	pgstore "github.com/cubos-banking-ledger/internal/data/postgres"
	redisstore "github.com/cubos-banking-ledger/internal/data/redis"
	sqlitestore "github.com/cubos-banking-ledger/internal/data/sqlite"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/platform/persistence"
)

// Store is an opened ledger store together with the connections behind it
type Store struct {
	ledger.Store
	closers []func(ctx context.Context) error
}

// Close releases every connection opened for the store
func (s *Store) Close(ctx context.Context) error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenStore connects to the backend named by cfg.Store.Backend
func OpenStore(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*Store, error) {
	log := logger.With("backend", cfg.Store.Backend)

	switch cfg.Store.Backend {
	case config.BackendFile:
		return &Store{Store: filestore.NewLedgerStore(log, cfg.Store.FilePath)}, nil

	case config.BackendMemory:
		return &Store{Store: memstore.NewLedgerStore()}, nil

	case config.BackendPostgres:
		db, err := persistence.NewPostgresDB(ctx, log, &cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &Store{
			Store: pgstore.NewLedgerStore(log, db),
			closers: []func(context.Context) error{func(context.Context) error {
				db.Close()
				return nil
			}},
		}, nil

	case config.BackendMongo:
		db, err := persistence.NewMongoDB(ctx, log, &cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return &Store{
			Store:   mongostore.NewLedgerStore(log, db.Database(), cfg.MongoDB.Collection),
			closers: []func(context.Context) error{db.Close},
		}, nil

	case config.BackendRedis:
		db, err := persistence.NewRedisDB(ctx, log, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Store{
			Store:   redisstore.NewLedgerStore(log, db.Client(), cfg.Redis.LedgerKey),
			closers: []func(context.Context) error{func(context.Context) error { return db.Close() }},
		}, nil

	case config.BackendSQLite:
		db, err := persistence.NewSQLiteDB(ctx, log, &cfg.SQLite)
		if err != nil {
			return nil, err
		}
		return &Store{
			Store:   sqlitestore.NewLedgerStore(log, db.DB()),
			closers: []func(context.Context) error{func(context.Context) error { return db.Close() }},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}
