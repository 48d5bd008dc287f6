package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/cubos-banking-ledger/internal/domain/account"
)

// Encode renders the ledger as indented JSON, the form every store persists
func Encode(l *Ledger) ([]byte, error) {
	normalize(l)
	data, err := json.MarshalIndent(l, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}
	return data, nil
}

// Decode parses a persisted ledger document
func Decode(data []byte) (*Ledger, error) {
	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	normalize(&l)
	return &l, nil
}

// normalize replaces nil sequences so they encode as [] rather than null
func normalize(l *Ledger) {
	if l.Accounts == nil {
		l.Accounts = []account.Account{}
	}
	if l.Deposits == nil {
		l.Deposits = []Deposit{}
	}
	if l.Withdrawals == nil {
		l.Withdrawals = []Withdrawal{}
	}
	if l.Transfers == nil {
		l.Transfers = []Transfer{}
	}
}
