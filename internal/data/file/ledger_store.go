// Package file persists the ledger as one JSON document on the local filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

// LedgerStore implements ledger.Store on a single file
type LedgerStore struct {
	path   string
	logger *slog.Logger
}

// NewLedgerStore creates a file ledger store at path
func NewLedgerStore(logger *slog.Logger, path string) *LedgerStore {
	return &LedgerStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the file backing the store
func (s *LedgerStore) Path() string {
	return s.path
}

// Load reads and decodes the ledger file
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ledger.ErrNotInitialized
		}
		s.logger.Error("Failed to read ledger file", "path", s.path, "error", err)
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	return ledger.Decode(data)
}

// Save writes the ledger to a temporary file in the same directory and
// renames it over the old one, so readers never see a half-written document.
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := ledger.Encode(l)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error("Failed to write ledger file", "path", tmpName, "error", err)
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		s.logger.Error("Failed to replace ledger file", "path", s.path, "error", err)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
