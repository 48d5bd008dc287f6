package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/events"
)

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("AssignsSequentialNumbers", func(t *testing.T) {
		f := newFixture(t)
		f.emitter.On("Emit", mock.Anything, mock.MatchedBy(func(e events.LedgerEvent) bool {
			return e.Type == events.AccountCreated && e.OccurredAt.Equal(fixedNow)
		})).Twice()

		first, err := f.accounts.CreateAccount(ctx, testOwner(1))
		require.NoError(t, err)
		second, err := f.accounts.CreateAccount(ctx, testOwner(2))
		require.NoError(t, err)

		assert.Equal(t, "0001", first.Number)
		assert.Equal(t, "0002", second.Number)
		assert.Zero(t, second.Balance)
		f.emitter.AssertExpectations(t)
	})

	t.Run("DuplicateEmailEmitsNothing", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, 1)
		owner := testOwner(2)
		owner.Email = testOwner(1).Email

		acc, err := f.accounts.CreateAccount(ctx, owner)

		assert.Nil(t, acc)
		assert.True(t, errors.Is(err, account.ErrDuplicateIdentity{Field: account.IdentityEmail}))
		f.emitter.AssertNumberOfCalls(t, "Emit", 1)
	})

	t.Run("MissingFields", func(t *testing.T) {
		f := newFixture(t)
		owner := testOwner(1)
		owner.Phone = ""

		_, err := f.accounts.CreateAccount(ctx, owner)

		assert.ErrorIs(t, err, account.ErrMissingOwnerFields)
	})
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.open(t, 1)
	f.open(t, 2)

	t.Run("CorrectSecret", func(t *testing.T) {
		accounts, err := f.accounts.ListAccounts(ctx, testSecret)

		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "0001", accounts[0].Number)
		assert.Equal(t, "0002", accounts[1].Number)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		accounts, err := f.accounts.ListAccounts(ctx, "nope")

		assert.Nil(t, accounts)
		assert.ErrorIs(t, err, ledger.ErrInvalidBankSecret)
	})
}

func TestUpdateOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := f.open(t, 1)
	f.open(t, 2)

	t.Run("AppliesProvidedFields", func(t *testing.T) {
		f.emitter.On("Emit", mock.Anything, eventOfType(events.AccountOwnerUpdated)).Once()
		name := "Renamed"

		err := f.accounts.UpdateOwner(ctx, acc.Number, account.OwnerUpdate{Name: &name})

		require.NoError(t, err)
		accounts, err := f.accounts.ListAccounts(ctx, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", accounts[0].Owner.Name)
		assert.Equal(t, testOwner(1).Email, accounts[0].Owner.Email)
		f.emitter.AssertExpectations(t)
	})

	t.Run("NationalIDTakenByOther", func(t *testing.T) {
		nid := testOwner(2).NationalID

		err := f.accounts.UpdateOwner(ctx, acc.Number, account.OwnerUpdate{NationalID: &nid})

		assert.True(t, errors.Is(err, account.ErrDuplicateIdentity{Field: account.IdentityNationalID}))
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		name := "x"

		err := f.accounts.UpdateOwner(ctx, "9999", account.OwnerUpdate{Name: &name})

		assert.True(t, errors.Is(err, account.ErrAccountNotFound{}))
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("ZeroBalance", func(t *testing.T) {
		f := newFixture(t)
		acc := f.open(t, 1)
		f.emitter.On("Emit", mock.Anything, eventOfType(events.AccountDeleted)).Once()

		require.NoError(t, f.accounts.DeleteAccount(ctx, acc.Number))

		accounts, err := f.accounts.ListAccounts(ctx, testSecret)
		require.NoError(t, err)
		assert.Empty(t, accounts)
		f.emitter.AssertExpectations(t)
	})

	t.Run("NonZeroBalance", func(t *testing.T) {
		f := newFixture(t)
		acc := f.open(t, 1)
		f.emitter.On("Emit", mock.Anything, eventOfType(events.DepositRecorded)).Once()
		require.NoError(t, f.money.Deposit(ctx, acc.Number, 100))

		err := f.accounts.DeleteAccount(ctx, acc.Number)

		assert.ErrorIs(t, err, account.ErrNonZeroBalance)
	})
}

func TestGetBalanceAndStatement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	acc := f.open(t, 1)
	f.emitter.On("Emit", mock.Anything, mock.Anything)
	require.NoError(t, f.money.Deposit(ctx, acc.Number, 500))
	require.NoError(t, f.money.Withdraw(ctx, acc.Number, 200, testOwner(1).Password))

	t.Run("Balance", func(t *testing.T) {
		balance, err := f.accounts.GetBalance(ctx, acc.Number, testOwner(1).Password)

		require.NoError(t, err)
		assert.Equal(t, int64(300), balance)
	})

	t.Run("BalanceWrongPassword", func(t *testing.T) {
		_, err := f.accounts.GetBalance(ctx, acc.Number, "wrong")

		assert.ErrorIs(t, err, account.ErrInvalidPassword)
	})

	t.Run("Statement", func(t *testing.T) {
		st, err := f.accounts.GetStatement(ctx, acc.Number, testOwner(1).Password)

		require.NoError(t, err)
		require.Len(t, st.Deposits, 1)
		require.Len(t, st.Withdrawals, 1)
		assert.Equal(t, "14/10/2026 10:30:00", st.Deposits[0].Timestamp)
		assert.Empty(t, st.TransfersSent)
		assert.Empty(t, st.TransfersReceived)
	})

	t.Run("StatementUnknownAccount", func(t *testing.T) {
		st, err := f.accounts.GetStatement(ctx, "0042", "x")

		assert.Nil(t, st)
		assert.True(t, errors.Is(err, account.ErrAccountNotFound{}))
	})
}
