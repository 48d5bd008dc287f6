package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cubos-banking-ledger/internal/config"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLiteMigrations returns the schema statements for the sqlite ledger store,
// one statement per entry.
func SQLiteMigrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS ledger_snapshot (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			document   BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}

type SQLiteDB struct {
	logger *slog.Logger
	db     *sql.DB
}

// NewSQLiteDB opens the database file, creating its directory and schema
func NewSQLiteDB(ctx context.Context, logger *slog.Logger, cfg *config.SQLiteConfig) (*SQLiteDB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// One connection keeps every statement on the same file handle
	db.SetMaxOpenConns(1)

	for _, stmt := range SQLiteMigrations() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply SQLite schema: %w", err)
		}
	}

	logger.Info("Opened SQLite database", "path", cfg.Path)

	return &SQLiteDB{
		logger: logger,
		db:     db,
	}, nil
}

func (s *SQLiteDB) DB() *sql.DB {
	return s.db
}

func (s *SQLiteDB) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close SQLite database: %w", err)
	}
	s.logger.Info("Closed SQLite database")
	return nil
}
