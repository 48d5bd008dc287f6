// Package memory keeps the encoded ledger in process memory. It is meant
// for tests and local development.
package memory

import (
	"context"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

// LedgerStore implements ledger.Store on an in-memory byte slice. It holds
// the encoded form so every Load returns an independent copy, the same as
// the persistent backends.
type LedgerStore struct {
	data []byte
}

// NewLedgerStore returns an empty, uninitialized store
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Load decodes the held document, or reports ErrNotInitialized before the first Save
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	if s.data == nil {
		return nil, ledger.ErrNotInitialized
	}
	return ledger.Decode(s.data)
}

// Save replaces the held document with the encoded ledger
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	data, err := ledger.Encode(l)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}
