package account

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOwner() Owner {
	return Owner{
		Name:       "Maria Souza",
		NationalID: "12345678900",
		BirthDate:  "1990-03-15",
		Phone:      "11999998888",
		Email:      "maria@example.com",
		Password:   "s3cret",
	}
}

func strPtr(s string) *string { return &s }

func TestNewAccount(t *testing.T) {
	t.Run("SuccessfulCreation", func(t *testing.T) {
		owner := validOwner()

		acc, err := NewAccount("0001", owner)

		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "0001", acc.Number)
		assert.Equal(t, owner, acc.Owner)
		assert.Equal(t, int64(0), acc.Balance, "Balance should start at zero")
	})

	t.Run("MissingFields", func(t *testing.T) {
		blankers := map[string]func(o *Owner){
			"name":        func(o *Owner) { o.Name = "" },
			"national_id": func(o *Owner) { o.NationalID = "" },
			"birth_date":  func(o *Owner) { o.BirthDate = "" },
			"phone":       func(o *Owner) { o.Phone = "" },
			"email":       func(o *Owner) { o.Email = "" },
			"password":    func(o *Owner) { o.Password = "" },
		}
		for field, blank := range blankers {
			t.Run(field, func(t *testing.T) {
				owner := validOwner()
				blank(&owner)

				acc, err := NewAccount("0001", owner)

				assert.Nil(t, acc)
				assert.ErrorIs(t, err, ErrMissingOwnerFields)
			})
		}
	})
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("SuccessfulDeposit", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: 5000}

		err := acc.Deposit(2000)

		require.NoError(t, err)
		assert.Equal(t, int64(7000), acc.Balance)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: 5000}

		assert.ErrorIs(t, acc.Deposit(0), ErrInvalidAmount)
		assert.ErrorIs(t, acc.Deposit(-10), ErrInvalidAmount)
		assert.Equal(t, int64(5000), acc.Balance)
	})

	t.Run("UpToMaximumBalance", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: math.MaxInt64 - 10}

		require.NoError(t, acc.Deposit(10))
		assert.Equal(t, int64(math.MaxInt64), acc.Balance)
	})

	t.Run("Overflow", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: math.MaxInt64}

		assert.ErrorIs(t, acc.Deposit(1), ErrBalanceOverflow)
		assert.False(t, acc.CanDeposit(1))
		assert.Equal(t, int64(math.MaxInt64), acc.Balance)
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("SuccessfulWithdrawal", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: 10000}

		err := acc.Withdraw(3000)

		require.NoError(t, err)
		assert.Equal(t, int64(7000), acc.Balance)
	})

	t.Run("WithdrawEntireBalance", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: 30}

		require.NoError(t, acc.Withdraw(30))
		assert.Equal(t, int64(0), acc.Balance)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: 30}

		err := acc.Withdraw(50)

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, int64(30), acc.Balance)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		acc := &Account{Number: "0001", Balance: 30}

		assert.ErrorIs(t, acc.Withdraw(0), ErrInvalidAmount)
	})
}

func TestAccount_CanWithdraw(t *testing.T) {
	t.Run("CanWithdrawSufficientFunds", func(t *testing.T) {
		acc := &Account{Balance: 1000}
		assert.True(t, acc.CanWithdraw(500))
		assert.True(t, acc.CanWithdraw(1000))
	})

	t.Run("CannotWithdrawInsufficientFunds", func(t *testing.T) {
		acc := &Account{Balance: 1000}
		assert.False(t, acc.CanWithdraw(1001))
	})
}

func TestAccount_PasswordMatches(t *testing.T) {
	acc := &Account{Owner: validOwner()}

	assert.True(t, acc.PasswordMatches("s3cret"))
	assert.False(t, acc.PasswordMatches("S3cret"))
	assert.False(t, acc.PasswordMatches(""))
}

func TestAccount_ApplyOwnerUpdate(t *testing.T) {
	t.Run("OnlyProvidedFieldsChange", func(t *testing.T) {
		acc := &Account{Owner: validOwner()}

		acc.ApplyOwnerUpdate(OwnerUpdate{
			Name:  strPtr("Maria S. Lima"),
			Phone: strPtr("11911112222"),
		})

		assert.Equal(t, "Maria S. Lima", acc.Owner.Name)
		assert.Equal(t, "11911112222", acc.Owner.Phone)
		assert.Equal(t, "12345678900", acc.Owner.NationalID)
		assert.Equal(t, "maria@example.com", acc.Owner.Email)
		assert.Equal(t, "s3cret", acc.Owner.Password)
	})

	t.Run("EmptyStringsAreIgnored", func(t *testing.T) {
		acc := &Account{Owner: validOwner()}

		acc.ApplyOwnerUpdate(OwnerUpdate{
			Name:     strPtr(""),
			Email:    strPtr(""),
			Password: strPtr(""),
		})

		assert.Equal(t, validOwner(), acc.Owner)
	})

	t.Run("EmptyUpdateIsNoop", func(t *testing.T) {
		acc := &Account{Owner: validOwner()}

		acc.ApplyOwnerUpdate(OwnerUpdate{})

		assert.Equal(t, validOwner(), acc.Owner)
	})
}

func TestErrors(t *testing.T) {
	t.Run("AccountNotFoundMatchesAnyNumber", func(t *testing.T) {
		err := error(ErrAccountNotFound{Number: "0042"})
		assert.True(t, errors.Is(err, ErrAccountNotFound{}))
		assert.True(t, errors.Is(err, ErrAccountNotFound{Number: "0042"}))
		assert.False(t, errors.Is(err, ErrAccountNotFound{Number: "0001"}))
		assert.Equal(t, "account not found: 0042", err.Error())
	})

	t.Run("DuplicateIdentityMatchesByField", func(t *testing.T) {
		err := error(ErrDuplicateIdentity{Field: IdentityEmail, Value: "a@b.c"})
		assert.True(t, errors.Is(err, ErrDuplicateIdentity{}))
		assert.True(t, errors.Is(err, ErrDuplicateIdentity{Field: IdentityEmail}))
		assert.False(t, errors.Is(err, ErrDuplicateIdentity{Field: IdentityNationalID}))
		assert.Equal(t, "an account with this email already exists", err.Error())
	})
}
