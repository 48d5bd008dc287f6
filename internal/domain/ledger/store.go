package ledger

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by Store.Load when the medium holds no ledger yet
var ErrNotInitialized = errors.New("ledger store is not initialized")

// ErrStoreUnavailable wraps any failure to read or write the persisted ledger
type ErrStoreUnavailable struct {
	Op  string
	Err error
}

func (e ErrStoreUnavailable) Error() string {
	return fmt.Sprintf("ledger store unavailable during %s: %v", e.Op, e.Err)
}

func (e ErrStoreUnavailable) Unwrap() error {
	return e.Err
}

// Is implements the errors.Is interface for ErrStoreUnavailable
func (e ErrStoreUnavailable) Is(target error) bool {
	_, ok := target.(ErrStoreUnavailable)
	return ok
}

// Store persists the whole ledger as a single unit. Implementations do no
// locking of their own; callers go through a Transactor.
type Store interface {
	Load(ctx context.Context) (*Ledger, error)
	Save(ctx context.Context, l *Ledger) error
}

// Bootstrap writes an empty ledger carrying bankSecret when the store has none.
// An existing ledger is left untouched.
func Bootstrap(ctx context.Context, store Store, bankSecret string) (bool, error) {
	_, err := store.Load(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotInitialized) {
		return false, fmt.Errorf("failed to inspect ledger store: %w", err)
	}

	if err := store.Save(ctx, New(bankSecret)); err != nil {
		return false, fmt.Errorf("failed to initialize ledger store: %w", err)
	}
	return true, nil
}
