// Package sqlite persists the ledger as a single row in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

const (
	loadQuery = `SELECT document FROM ledger_snapshot WHERE id = 1`

	saveQuery = `INSERT INTO ledger_snapshot (id, document, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
)

// LedgerStore implements ledger.Store for SQLite
type LedgerStore struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewLedgerStore creates a SQLite ledger store. The schema must already exist.
func NewLedgerStore(logger *slog.Logger, db *sql.DB) *LedgerStore {
	return &LedgerStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Load reads the ledger row
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	var document []byte
	err := s.db.QueryRowContext(ctx, loadQuery).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotInitialized
		}
		s.logger.Error("Failed to load ledger", "error", err)
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return ledger.Decode(document)
}

// Save upserts the ledger row
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	document, err := ledger.Encode(l)
	if err != nil {
		return err
	}

	updatedAt := s.now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, saveQuery, document, updatedAt); err != nil {
		s.logger.Error("Failed to save ledger", "error", err)
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}
