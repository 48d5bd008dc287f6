package ledger

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// Access modes reported to an Observer
const (
	ModeRead  = "read"
	ModeWrite = "write"
)

// DefaultMaxConcurrentReads bounds parallel View calls when no limit is configured
const DefaultMaxConcurrentReads = 64

// Observer is notified once per critical section
type Observer interface {
	ObserveCriticalSection(op, mode string, elapsed time.Duration, err error)
}

// Transactor is the single serialization point for ledger access. Update
// runs load -> mutate -> save with no other reader or writer inside;
// View runs load -> read alongside other views only.
type Transactor struct {
	store    Store
	sem      *semaphore.Weighted
	weight   int64
	observer Observer
}

// TransactorOption configures a Transactor
type TransactorOption func(*Transactor)

// WithObserver attaches an observer to every critical section
func WithObserver(o Observer) TransactorOption {
	return func(t *Transactor) {
		t.observer = o
	}
}

// WithMaxConcurrentReads sets how many views may hold the store at once
func WithMaxConcurrentReads(n int64) TransactorOption {
	return func(t *Transactor) {
		if n > 0 {
			t.weight = n
		}
	}
}

// NewTransactor creates a transactor over store
func NewTransactor(store Store, opts ...TransactorOption) *Transactor {
	t := &Transactor{
		store:  store,
		weight: DefaultMaxConcurrentReads,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.sem = semaphore.NewWeighted(t.weight)
	return t
}

// Update loads a fresh ledger, runs fn against it and saves the result.
// When fn fails nothing is written and its error is returned as is.
func (t *Transactor) Update(ctx context.Context, op string, fn func(*Ledger) error) (err error) {
	if err := t.sem.Acquire(ctx, t.weight); err != nil {
		return err
	}
	defer t.sem.Release(t.weight)

	start := time.Now()
	defer func() { t.observe(op, ModeWrite, start, err) }()

	l, err := t.store.Load(ctx)
	if err != nil {
		return ErrStoreUnavailable{Op: op, Err: err}
	}

	if err := fn(l); err != nil {
		return err
	}

	if err := t.store.Save(ctx, l); err != nil {
		return ErrStoreUnavailable{Op: op, Err: err}
	}
	return nil
}

// View loads a fresh ledger and runs fn against it without saving
func (t *Transactor) View(ctx context.Context, op string, fn func(*Ledger) error) (err error) {
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer t.sem.Release(1)

	start := time.Now()
	defer func() { t.observe(op, ModeRead, start, err) }()

	l, err := t.store.Load(ctx)
	if err != nil {
		return ErrStoreUnavailable{Op: op, Err: err}
	}
	return fn(l)
}

func (t *Transactor) observe(op, mode string, start time.Time, err error) {
	if t.observer != nil {
		t.observer.ObserveCriticalSection(op, mode, time.Since(start), err)
	}
}
