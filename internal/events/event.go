// Package events describes the notifications emitted after committed ledger
// mutations and delivers them off the request path.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Type names a ledger event
type Type string

const (
	AccountCreated      Type = "account.created"
	AccountOwnerUpdated Type = "account.owner_updated"
	AccountDeleted      Type = "account.deleted"
	DepositRecorded     Type = "deposit.recorded"
	WithdrawalRecorded  Type = "withdrawal.recorded"
	TransferRecorded    Type = "transfer.recorded"
)

// LedgerEvent is published once a mutation has been saved. It never carries
// credentials.
type LedgerEvent struct {
	ID                        uuid.UUID `json:"id"`
	Type                      Type      `json:"type"`
	AccountNumber             string    `json:"account_number"`
	CounterpartyAccountNumber string    `json:"counterparty_account_number,omitempty"`
	Amount                    int64     `json:"amount,omitempty"`
	CorrelationID             string    `json:"correlation_id,omitempty"`
	OccurredAt                time.Time `json:"occurred_at"`
}

// New builds an event with a fresh ID
func New(t Type, accountNumber string, at time.Time) LedgerEvent {
	return LedgerEvent{
		ID:            uuid.New(),
		Type:          t,
		AccountNumber: accountNumber,
		OccurredAt:    at.UTC(),
	}
}

// EventType is sent as a message header by the Kafka producer
func (e LedgerEvent) EventType() string {
	return string(e.Type)
}

// Key partitions events by the account they concern
func (e LedgerEvent) Key() string {
	return e.AccountNumber
}
