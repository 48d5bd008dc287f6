package service

import (
	"context"

	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

// Operation names used for logging, metrics and store error context
const (
	OpListAccounts  = "list_accounts"
	OpCreateAccount = "create_account"
	OpUpdateOwner   = "update_owner"
	OpDeleteAccount = "delete_account"
	OpBalance       = "balance"
	OpStatement     = "statement"
	OpDeposit       = "deposit"
	OpWithdraw      = "withdraw"
	OpTransfer      = "transfer"
)

// AccountService defines the interface for account operations
type AccountService interface {
	// ListAccounts returns every account in stored order
	// Returns ErrInvalidBankSecret unless bankSecret matches the ledger's
	ListAccounts(ctx context.Context, bankSecret string) ([]account.Account, error)

	// CreateAccount opens an account with the next free number and a zero balance
	// Returns ErrMissingOwnerFields or ErrDuplicateIdentity on invalid owners
	CreateAccount(ctx context.Context, owner account.Owner) (*account.Account, error)

	// UpdateOwner applies the provided owner fields
	UpdateOwner(ctx context.Context, number string, update account.OwnerUpdate) error

	// DeleteAccount removes an account whose balance is zero
	DeleteAccount(ctx context.Context, number string) error

	// GetBalance returns the balance after checking the account password
	GetBalance(ctx context.Context, number, password string) (int64, error)

	// GetStatement returns the records of one account after checking its password
	GetStatement(ctx context.Context, number, password string) (*ledger.Statement, error)
}

// TransactionService defines the interface for money movements
type TransactionService interface {
	Deposit(ctx context.Context, number string, amount int64) error
	Withdraw(ctx context.Context, number string, amount int64, password string) error
	Transfer(ctx context.Context, source, destination string, amount int64, password string) error
}
