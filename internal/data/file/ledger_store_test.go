package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

func newTestStore(t *testing.T) *LedgerStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "ledger.json")
	return NewLedgerStore(slog.New(slog.NewTextHandler(os.Stdout, nil)), path)
}

func TestLedgerStore_MissingFile(t *testing.T) {
	_, err := newTestStore(t).Load(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNotInitialized)
}

func TestLedgerStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	l := ledger.New("Cubos123Bank")
	l.Accounts = append(l.Accounts, account.Account{Number: "0001", Balance: 7, Owner: account.Owner{Name: "D"}})
	l.Transfers = append(l.Transfers, ledger.Transfer{Timestamp: "14/10/2026 10:00:00", SourceAccountNumber: "0001", DestinationAccountNumber: "0002", Amount: 3})

	require.NoError(t, store.Save(ctx, l))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, l, loaded)

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "Temporary files must not be left behind")
}

func TestLedgerStore_OverwriteReplacesWholeDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	big := ledger.New("s")
	for i := 0; i < 50; i++ {
		big.Deposits = append(big.Deposits, ledger.Deposit{AccountNumber: "0001", Amount: int64(i + 1)})
	}
	require.NoError(t, store.Save(ctx, big))
	require.NoError(t, store.Save(ctx, ledger.New("s")))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Deposits)
}

func TestLedgerStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{\"accounts\": [}"), 0o644))

	_, err := store.Load(context.Background())

	assert.ErrorContains(t, err, "failed to decode ledger")
}

func TestLedgerStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := newTestStore(t)

	assert.ErrorIs(t, store.Save(ctx, ledger.New("s")), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
