// Package mongo persists the ledger as a single MongoDB document.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

const (
	// LedgerCollectionName is the default collection holding the ledger document
	LedgerCollectionName = "ledger_snapshots"

	ledgerDocumentID = "ledger"
)

// collection is the subset of *mongo.Collection the store uses
type collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

var _ collection = (*mongo.Collection)(nil)

type snapshot struct {
	ID        string    `bson:"_id"`
	Document  []byte    `bson:"document"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// LedgerStore implements ledger.Store for MongoDB
type LedgerStore struct {
	coll   collection
	logger *slog.Logger
	now    func() time.Time
}

// NewLedgerStore creates a MongoDB ledger store backed by the named collection
func NewLedgerStore(logger *slog.Logger, db *mongo.Database, collectionName string) *LedgerStore {
	if collectionName == "" {
		collectionName = LedgerCollectionName
	}
	return &LedgerStore{
		coll:   db.Collection(collectionName),
		logger: logger,
		now:    time.Now,
	}
}

// Load fetches the ledger document
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	var snap snapshot
	err := s.coll.FindOne(ctx, bson.M{"_id": ledgerDocumentID}).Decode(&snap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrNotInitialized
		}
		s.logger.Error("Failed to load ledger", "error", err)
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return ledger.Decode(snap.Document)
}

// Save replaces the ledger document, inserting it when absent
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	document, err := ledger.Encode(l)
	if err != nil {
		return err
	}

	snap := snapshot{
		ID:        ledgerDocumentID,
		Document:  document,
		UpdatedAt: s.now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": ledgerDocumentID}, snap, opts); err != nil {
		s.logger.Error("Failed to save ledger", "error", err)
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}
