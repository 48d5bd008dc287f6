package service

import (
	"context"
	"log/slog"

	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/events"
	"github.com/cubos-banking-ledger/internal/logger"
)

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	tx      *ledger.Transactor
	emitter events.Emitter
	clock   ledger.Clock
	logger  *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(logger *slog.Logger, tx *ledger.Transactor, emitter events.Emitter, clock ledger.Clock) AccountService {
	return &AccountServiceImpl{
		tx:      tx,
		emitter: emitter,
		clock:   clock,
		logger:  logger,
	}
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context, bankSecret string) ([]account.Account, error) {
	var accounts []account.Account
	err := s.tx.View(ctx, OpListAccounts, func(l *ledger.Ledger) error {
		if err := l.CheckBankSecret(bankSecret); err != nil {
			return err
		}
		accounts = l.ListAccounts()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *AccountServiceImpl) CreateAccount(ctx context.Context, owner account.Owner) (*account.Account, error) {
	var created account.Account
	err := s.tx.Update(ctx, OpCreateAccount, func(l *ledger.Ledger) error {
		acc, err := l.CreateAccount(owner)
		if err != nil {
			return err
		}
		created = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Info("Account created", "account_number", created.Number)
	s.emitter.Emit(ctx, events.New(events.AccountCreated, created.Number, s.clock.Now()))
	return &created, nil
}

func (s *AccountServiceImpl) UpdateOwner(ctx context.Context, number string, update account.OwnerUpdate) error {
	err := s.tx.Update(ctx, OpUpdateOwner, func(l *ledger.Ledger) error {
		return l.UpdateOwner(number, update)
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, events.New(events.AccountOwnerUpdated, number, s.clock.Now()))
	return nil
}

func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, number string) error {
	err := s.tx.Update(ctx, OpDeleteAccount, func(l *ledger.Ledger) error {
		return l.DeleteAccount(number)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.logger).Info("Account deleted", "account_number", number)
	s.emitter.Emit(ctx, events.New(events.AccountDeleted, number, s.clock.Now()))
	return nil
}

func (s *AccountServiceImpl) GetBalance(ctx context.Context, number, password string) (int64, error) {
	var balance int64
	err := s.tx.View(ctx, OpBalance, func(l *ledger.Ledger) error {
		b, err := l.Balance(number, password)
		balance = b
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *AccountServiceImpl) GetStatement(ctx context.Context, number, password string) (*ledger.Statement, error) {
	var statement ledger.Statement
	err := s.tx.View(ctx, OpStatement, func(l *ledger.Ledger) error {
		st, err := l.Statement(number, password)
		statement = st
		return err
	})
	if err != nil {
		return nil, err
	}
	return &statement, nil
}
