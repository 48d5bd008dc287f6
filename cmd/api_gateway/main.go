package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/cubos-banking-ledger/internal/api_gateway"
	"github.com/cubos-banking-ledger/internal/api_gateway/service"
	"github.com/cubos-banking-ledger/internal/config"
	"github.com/cubos-banking-ledger/internal/data"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/events"
	"github.com/cubos-banking-ledger/internal/logger"
	"github.com/cubos-banking-ledger/internal/platform/messaging/producers"
	"github.com/cubos-banking-ledger/internal/platform/metrics"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("api_gateway")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize metrics
	var m *metrics.Metrics
	txOpts := []ledger.TransactorOption{ledger.WithMaxConcurrentReads(cfg.Store.MaxConcurrentReads)}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		txOpts = append(txOpts, ledger.WithObserver(m))
	}

	// Open the configured ledger store
	store, err := data.OpenStore(appCtx, log, cfg)
	if err != nil {
		log.Error("Failed to open ledger store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}

	created, err := ledger.Bootstrap(appCtx, store, cfg.Store.BankSecret)
	if err != nil {
		log.Error("Failed to bootstrap ledger", "error", err)
		os.Exit(1)
	}
	if created {
		log.Info("Initialized empty ledger", "backend", cfg.Store.Backend)
	}

	tx := ledger.NewTransactor(store, txOpts...)

	// Initialize the ledger event publisher
	var publisher producers.MessagePublisher = producers.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher, err = producers.NewLedgerEventProducer(appCtx, log, &cfg.Kafka)
		if err != nil {
			log.Error("Failed to initialize ledger event producer", "error", err)
			os.Exit(1)
		}
	}

	dispatcher, err := events.NewDispatcher(publisher, events.DispatcherConfig{
		Size:           cfg.WorkerPool.Size,
		PublishTimeout: cfg.Kafka.WriteTimeout,
	}, log)
	if err != nil {
		log.Error("Failed to initialize event dispatcher", "error", err)
		os.Exit(1)
	}

	// Initialize services
	accountService := service.NewAccountService(log, tx, dispatcher, ledger.SystemClock)
	transactionService := service.NewTransactionService(log, tx, dispatcher, ledger.SystemClock)

	// Initialize REST server
	server := api_gateway.NewServer(log, cfg, m, accountService, transactionService)
	log.Info("REST server initialized")

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	// Graceful shutdown sequence
	log.Info("Starting graceful shutdown...")

	var shutdownErr error

	// Stop accepting requests first so no new events are queued
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
		shutdownErr = err
	}

	if err := dispatcher.Close(cfg.Server.ShutdownTimeout); err != nil {
		log.Error("Error draining event dispatcher", "error", err)
		shutdownErr = err
	}

	if err := publisher.Close(); err != nil {
		log.Error("Error closing ledger event producer", "error", err)
		shutdownErr = err
	}

	if err := store.Close(shutdownCtx); err != nil {
		log.Error("Error closing ledger store", "error", err)
		shutdownErr = err
	}

	// Final status
	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if shutdownErr != nil || serverErr != nil {
		log.Error("Server shutdown completed with errors")
		os.Exit(1)
	}
	log.Info("Server shutdown completed successfully")
}
