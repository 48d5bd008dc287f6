package ledger

import (
	"time"

	"github.com/cubos-banking-ledger/internal/domain/account"
)

// Deposit credits amount to an account and records it
func (l *Ledger) Deposit(number string, amount int64, at time.Time) error {
	if amount <= 0 {
		return account.ErrInvalidAmount
	}

	acc, err := l.find(number)
	if err != nil {
		return err
	}

	if err := acc.Deposit(amount); err != nil {
		return err
	}

	l.Deposits = append(l.Deposits, Deposit{
		Timestamp:     stamp(at),
		AccountNumber: number,
		Amount:        amount,
	})
	return nil
}

// Withdraw debits amount from an account after checking its password
func (l *Ledger) Withdraw(number string, amount int64, password string, at time.Time) error {
	if amount <= 0 {
		return account.ErrInvalidAmount
	}

	acc, err := l.find(number)
	if err != nil {
		return err
	}

	if !acc.PasswordMatches(password) {
		return account.ErrInvalidPassword
	}

	if err := acc.Withdraw(amount); err != nil {
		return err
	}

	l.Withdrawals = append(l.Withdrawals, Withdrawal{
		Timestamp:     stamp(at),
		AccountNumber: number,
		Amount:        amount,
	})
	return nil
}

// Transfer moves amount from source to destination. Checks run in a fixed
// order: amount, source, destination, same account, password, funds.
func (l *Ledger) Transfer(source, destination string, amount int64, password string, at time.Time) error {
	if amount <= 0 {
		return account.ErrInvalidAmount
	}

	src, err := l.find(source)
	if err != nil {
		return err
	}
	dst, err := l.find(destination)
	if err != nil {
		return err
	}

	if source == destination {
		return ErrSameAccount
	}

	if !src.PasswordMatches(password) {
		return account.ErrInvalidPassword
	}

	if !src.CanWithdraw(amount) {
		return account.ErrInsufficientFunds
	}

	if !dst.CanDeposit(amount) {
		return account.ErrBalanceOverflow
	}

	if err := src.Withdraw(amount); err != nil {
		return err
	}
	if err := dst.Deposit(amount); err != nil {
		return err
	}

	l.Transfers = append(l.Transfers, Transfer{
		Timestamp:                stamp(at),
		SourceAccountNumber:      source,
		DestinationAccountNumber: destination,
		Amount:                   amount,
	})
	return nil
}
