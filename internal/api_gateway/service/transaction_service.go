package service

import (
	"context"
	"log/slog"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/events"
)

// TransactionServiceImpl implements the TransactionService interface
type TransactionServiceImpl struct {
	tx      *ledger.Transactor
	emitter events.Emitter
	clock   ledger.Clock
	logger  *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(logger *slog.Logger, tx *ledger.Transactor, emitter events.Emitter, clock ledger.Clock) TransactionService {
	return &TransactionServiceImpl{
		tx:      tx,
		emitter: emitter,
		clock:   clock,
		logger:  logger,
	}
}

// Deposit credits an account. The record timestamp is taken inside the
// critical section so stored order and timestamps agree.
func (s *TransactionServiceImpl) Deposit(ctx context.Context, number string, amount int64) error {
	var event events.LedgerEvent
	err := s.tx.Update(ctx, OpDeposit, func(l *ledger.Ledger) error {
		at := s.clock.Now()
		if err := l.Deposit(number, amount, at); err != nil {
			return err
		}
		event = events.New(events.DepositRecorded, number, at)
		event.Amount = amount
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, event)
	return nil
}

func (s *TransactionServiceImpl) Withdraw(ctx context.Context, number string, amount int64, password string) error {
	var event events.LedgerEvent
	err := s.tx.Update(ctx, OpWithdraw, func(l *ledger.Ledger) error {
		at := s.clock.Now()
		if err := l.Withdraw(number, amount, password, at); err != nil {
			return err
		}
		event = events.New(events.WithdrawalRecorded, number, at)
		event.Amount = amount
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, event)
	return nil
}

func (s *TransactionServiceImpl) Transfer(ctx context.Context, source, destination string, amount int64, password string) error {
	var event events.LedgerEvent
	err := s.tx.Update(ctx, OpTransfer, func(l *ledger.Ledger) error {
		at := s.clock.Now()
		if err := l.Transfer(source, destination, amount, password, at); err != nil {
			return err
		}
		event = events.New(events.TransferRecorded, source, at)
		event.CounterpartyAccountNumber = destination
		event.Amount = amount
		return nil
	})
	if err != nil {
		return err
	}

	s.emitter.Emit(ctx, event)
	return nil
}
