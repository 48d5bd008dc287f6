package persistence

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubos-banking-ledger/internal/config"
)

func TestNewSQLiteDB(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")

	db, err := NewSQLiteDB(context.Background(), logger, &config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)

	var name string
	err = db.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'ledger_snapshot'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "ledger_snapshot", name)

	// Reopening applies the schema again without error
	again, err := NewSQLiteDB(context.Background(), logger, &config.SQLiteConfig{Path: path})
	require.NoError(t, err)
	assert.NoError(t, again.Close())
}
