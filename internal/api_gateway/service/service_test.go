package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cubos-banking-ledger/internal/data/memory"
	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/events"
)

const testSecret = "Cubos123Bank"

var fixedNow = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.Local)

// MockEmitter is a mock implementation of events.Emitter
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, event events.LedgerEvent) {
	m.Called(ctx, event)
}

func eventOfType(t events.Type) interface{} {
	return mock.MatchedBy(func(e events.LedgerEvent) bool { return e.Type == t })
}

func testOwner(n int) account.Owner {
	return account.Owner{
		Name:       fmt.Sprintf("Owner %d", n),
		NationalID: fmt.Sprintf("111.222.333-%02d", n),
		BirthDate:  "1991-02-03",
		Phone:      "11988887777",
		Email:      fmt.Sprintf("owner%d@example.com", n),
		Password:   fmt.Sprintf("secret%d", n),
	}
}

type fixture struct {
	tx       *ledger.Transactor
	emitter  *MockEmitter
	accounts AccountService
	money    TransactionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewLedgerStore()
	_, err := ledger.Bootstrap(context.Background(), store, testSecret)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := ledger.NewTransactor(store)
	emitter := new(MockEmitter)
	clock := ledger.ClockFunc(func() time.Time { return fixedNow })

	return &fixture{
		tx:       tx,
		emitter:  emitter,
		accounts: NewAccountService(log, tx, emitter, clock),
		money:    NewTransactionService(log, tx, emitter, clock),
	}
}

// open creates an account, expecting exactly one creation event
func (f *fixture) open(t *testing.T, n int) *account.Account {
	t.Helper()
	f.emitter.On("Emit", mock.Anything, eventOfType(events.AccountCreated)).Once()
	acc, err := f.accounts.CreateAccount(context.Background(), testOwner(n))
	require.NoError(t, err)
	return acc
}
