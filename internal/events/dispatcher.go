package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/cubos-banking-ledger/internal/logger"
	"github.com/cubos-banking-ledger/internal/platform/messaging/producers"
)

// Emitter accepts events for delivery
type Emitter interface {
	Emit(ctx context.Context, event LedgerEvent)
}

// Dispatcher publishes events from a bounded worker pool so callers never
// wait on the broker. Delivery failures are logged and dropped; they cannot
// undo a mutation that has already been saved.
type Dispatcher struct {
	publisher producers.MessagePublisher
	pool      *ants.Pool
	logger    *slog.Logger
	timeout   time.Duration
}

type DispatcherConfig struct {
	Size           int
	PublishTimeout time.Duration
}

func NewDispatcher(publisher producers.MessagePublisher, cfg DispatcherConfig, logger *slog.Logger) (*Dispatcher, error) {
	pool, err := ants.NewPool(cfg.Size)
	if err != nil {
		return nil, err
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Dispatcher{
		publisher: publisher,
		pool:      pool,
		logger:    logger,
		timeout:   timeout,
	}, nil
}

// Emit queues event for publishing. The request context only contributes
// its correlation ID; cancellation of the request does not stop delivery.
func (d *Dispatcher) Emit(ctx context.Context, event LedgerEvent) {
	log := logger.FromContext(ctx, d.logger)
	if event.CorrelationID == "" {
		event.CorrelationID = logger.CorrelationID(ctx)
	}
	publishCtx := context.WithoutCancel(ctx)

	err := d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(publishCtx, d.timeout)
		defer cancel()

		if err := d.publisher.Publish(ctx, event.Key(), event); err != nil {
			log.Error("Failed to publish ledger event",
				"event_id", event.ID.String(),
				"event_type", event.Type,
				"account_number", event.AccountNumber,
				"error", err,
			)
			return
		}
		log.Debug("Published ledger event", "event_id", event.ID.String(), "event_type", event.Type)
	})
	if err != nil {
		log.Error("Failed to submit ledger event to worker pool",
			"event_id", event.ID.String(),
			"event_type", event.Type,
			"error", err,
		)
	}
}

// Close waits up to timeout for queued events, then releases the pool
func (d *Dispatcher) Close(timeout time.Duration) error {
	d.logger.Info("Shutting down event dispatcher", "running_workers", d.pool.Running())
	return d.pool.ReleaseTimeout(timeout)
}

// Running returns the number of busy workers
func (d *Dispatcher) Running() int {
	return d.pool.Running()
}

// Capacity returns the size of the worker pool
func (d *Dispatcher) Capacity() int {
	return d.pool.Cap()
}

var _ Emitter = (*Dispatcher)(nil)
