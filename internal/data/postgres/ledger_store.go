// Package postgres persists the ledger as a single JSONB row in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/platform/persistence"
)

const (
	loadQuery = `SELECT document FROM ledger_snapshots WHERE id = 1`

	saveQuery = `
		INSERT INTO ledger_snapshots (id, document, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
	`
)

// LedgerStore implements ledger.Store for PostgreSQL
type LedgerStore struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewLedgerStore creates a PostgreSQL ledger store on top of the pool
func NewLedgerStore(logger *slog.Logger, db *persistence.PostgresDB) *LedgerStore {
	return &LedgerStore{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Load reads the ledger row. A missing row means the ledger was never bootstrapped.
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	var document []byte
	err := s.querier.QueryRow(ctx, loadQuery).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ledger.ErrNotInitialized
		}
		s.logger.Error("Failed to load ledger", "error", err)
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return ledger.Decode(document)
}

// Save overwrites the ledger row
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	document, err := ledger.Encode(l)
	if err != nil {
		return err
	}

	if _, err := s.querier.Exec(ctx, saveQuery, document); err != nil {
		s.logger.Error("Failed to save ledger", "error", err)
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}
