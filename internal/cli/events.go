package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubos-banking-ledger/internal/events"
	"github.com/cubos-banking-ledger/internal/platform/messaging/consumers"
)

func newEventsCmd() *cobra.Command {
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect ledger events",
	}
	eventsCmd.AddCommand(&cobra.Command{
		Use:   "tail",
		Short: "Print ledger events as they are published",
		Long:  `Join the KAFKA_CONSUMER_GROUP on KAFKA_EVENTS_TOPIC and print each event until interrupted.`,
		Args:  cobra.NoArgs,
		RunE:  runEventsTail,
	})
	return eventsCmd
}

func runEventsTail(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required to tail events")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := consumers.NewKafkaConsumer(ctx, log, &cfg.Kafka)
	defer consumer.Close()

	out := cmd.OutOrStdout()
	return consumer.Consume(ctx, func(_ context.Context, msg consumers.Message) error {
		if err := printEvent(out, msg); err != nil {
			// Undecodable records are skipped so the group can move past them
			log.Warn("Skipping undecodable event", "offset", msg.Offset, "partition", msg.Partition, "error", err)
		}
		return nil
	})
}

// printEvent writes one event per line
func printEvent(w io.Writer, msg consumers.Message) error {
	var event events.LedgerEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	line := fmt.Sprintf("%s  %-20s account=%s", event.OccurredAt.Format(time.RFC3339), event.Type, event.AccountNumber)
	if event.CounterpartyAccountNumber != "" {
		line += " counterparty=" + event.CounterpartyAccountNumber
	}
	if event.Amount != 0 {
		line += fmt.Sprintf(" amount=%d", event.Amount)
	}
	if event.CorrelationID != "" {
		line += " correlation_id=" + event.CorrelationID
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
