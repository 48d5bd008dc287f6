package sqlite

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubos-banking-ledger/internal/config"
	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/platform/persistence"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func openTestDB(t *testing.T) *persistence.SQLiteDB {
	t.Helper()
	db, err := persistence.NewSQLiteDB(context.Background(), newTestLogger(),
		&config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "ledger.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLedgerStore_RealDatabase(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore(newTestLogger(), openTestDB(t).DB())

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ledger.ErrNotInitialized)

	created, err := ledger.Bootstrap(ctx, store, "Cubos123Bank")
	require.NoError(t, err)
	assert.True(t, created)

	l, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cubos123Bank", l.BankSecret)

	_, err = l.CreateAccount(account.Owner{Name: "C", NationalID: "1", BirthDate: "b", Phone: "p", Email: "c@x.io", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, l.Deposit("0001", 90, time.Now()))
	require.NoError(t, store.Save(ctx, l))

	// A second save must replace the single row, not add another
	require.NoError(t, store.Save(ctx, l))

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, l, reloaded)
}

func TestLedgerStore_Failures(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := &LedgerStore{db: db, logger: newTestLogger(), now: func() time.Time {
		return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	}}

	t.Run("load error", func(t *testing.T) {
		expectedErr := errors.New("database is locked")
		mock.ExpectQuery(regexp.QuoteMeta(loadQuery)).WillReturnError(expectedErr)

		_, err := store.Load(ctx)

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save error", func(t *testing.T) {
		expectedErr := errors.New("disk I/O error")
		mock.ExpectExec(regexp.QuoteMeta(saveQuery)).
			WithArgs(sqlmock.AnyArg(), "2026-10-14T08:00:00Z").
			WillReturnError(expectedErr)

		err := store.Save(ctx, ledger.New("s"))

		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to save ledger")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
