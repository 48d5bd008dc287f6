// Package redis persists the ledger under a single Redis key.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

// kvClient is the subset of the go-redis client the store uses
type kvClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var _ kvClient = (*redis.Client)(nil)

// LedgerStore implements ledger.Store for Redis
type LedgerStore struct {
	client kvClient
	key    string
	logger *slog.Logger
}

// NewLedgerStore creates a Redis ledger store writing to key
func NewLedgerStore(logger *slog.Logger, client *redis.Client, key string) *LedgerStore {
	return &LedgerStore{
		client: client,
		key:    key,
		logger: logger,
	}
}

// Load reads the ledger key
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ledger.ErrNotInitialized
		}
		s.logger.Error("Failed to load ledger", "key", s.key, "error", err)
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return ledger.Decode(data)
}

// Save overwrites the ledger key with no expiration
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	data, err := ledger.Encode(l)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		s.logger.Error("Failed to save ledger", "key", s.key, "error", err)
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}
