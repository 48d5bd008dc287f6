// Package config provides configuration structures and validation for the ledger service.
// It covers the HTTP server, the selected ledger store backend and its connection
// settings, event publishing, the worker pool and metrics.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store backends accepted by STORE_BACKEND
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
)

var backends = []string{BackendFile, BackendMemory, BackendPostgres, BackendMongo, BackendRedis, BackendSQLite}

// Config holds the complete application configuration. Backend sections
// are only validated when that backend is selected.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Store       StoreConfig
	Postgres    PostgresConfig
	MongoDB     MongoDBConfig
	Redis       RedisConfig
	SQLite      SQLiteConfig
	Kafka       KafkaConfig
	WorkerPool  WorkerPoolConfig
	Metrics     MetricsConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// StoreConfig selects and parameterizes the ledger store
type StoreConfig struct {
	Backend            string
	FilePath           string // Used by the file backend
	BankSecret         string // Written into a freshly bootstrapped ledger
	MaxConcurrentReads int64  // Parallel views allowed inside the transactor
}

// PostgresConfig contains PostgreSQL configuration
type PostgresConfig struct {
	URL             string        // Database connection string
	MaxConns        int32         // Maximum number of open connections
	MinConns        int32         // Maximum number of idle connections
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection
	MigrationsPath  string        // Path to migration files
}

// MongoDBConfig contains MongoDB configuration
type MongoDBConfig struct {
	URI             string
	Database        string
	Collection      string
	Timeout         time.Duration
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	LedgerKey string
}

// SQLiteConfig contains SQLite configuration
type SQLiteConfig struct {
	Path string
}

// KafkaConfig contains Kafka configuration for ledger events
type KafkaConfig struct {
	Enabled           bool
	Brokers           string
	EventsTopic       string
	NumPartitions     int // Number of partitions for topics
	ReplicationFactor int // Replication factor for topics
	WriteTimeout      time.Duration
	ConsumerGroup     string
	MinBytes          int
	MaxBytes          int
	MaxWait           time.Duration
	StartOffset       int64
}

// WorkerPoolConfig contains worker pool configuration
type WorkerPoolConfig struct {
	Size int // Maximum number of workers in the pool
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool
}

// validate performs validation of all configuration values,
// collecting every problem into a single error
func (c *Config) validate() error {
	var validationErrors []string

	// Validate Server config
	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	// Validate Store config
	if c.Store.BankSecret == "" {
		validationErrors = append(validationErrors, "STORE_BANK_SECRET is required")
	}
	if c.Store.MaxConcurrentReads <= 0 {
		validationErrors = append(validationErrors, "STORE_MAX_CONCURRENT_READS must be greater than 0")
	}

	switch c.Store.Backend {
	case BackendFile:
		if c.Store.FilePath == "" {
			validationErrors = append(validationErrors, "STORE_FILE_PATH is required for the file backend")
		}
	case BackendMemory:
	case BackendPostgres:
		validationErrors = append(validationErrors, c.Postgres.validate()...)
	case BackendMongo:
		validationErrors = append(validationErrors, c.MongoDB.validate()...)
	case BackendRedis:
		if c.Redis.Addr == "" {
			validationErrors = append(validationErrors, "REDIS_ADDR is required")
		}
		if c.Redis.LedgerKey == "" {
			validationErrors = append(validationErrors, "REDIS_LEDGER_KEY is required")
		}
		if c.Redis.DB < 0 {
			validationErrors = append(validationErrors, "REDIS_DB cannot be negative")
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			validationErrors = append(validationErrors, "SQLITE_PATH is required")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("STORE_BACKEND must be one of %s", strings.Join(backends, ", ")))
	}

	// Validate Kafka config
	if c.Kafka.Enabled {
		if c.Kafka.Brokers == "" {
			validationErrors = append(validationErrors, "KAFKA_BROKERS is required")
		}
		if c.Kafka.EventsTopic == "" {
			validationErrors = append(validationErrors, "KAFKA_EVENTS_TOPIC is required")
		}
		if c.Kafka.NumPartitions <= 0 {
			validationErrors = append(validationErrors, "KAFKA_NUM_PARTITIONS must be greater than 0")
		}
		if c.Kafka.ReplicationFactor <= 0 {
			validationErrors = append(validationErrors, "KAFKA_REPLICATION_FACTOR must be greater than 0")
		}
		if c.Kafka.WriteTimeout <= 0 {
			validationErrors = append(validationErrors, "KAFKA_WRITE_TIMEOUT must be greater than 0")
		}
	}

	// Validate WorkerPool config
	if c.WorkerPool.Size <= 0 {
		validationErrors = append(validationErrors, "WORKER_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}

func (c PostgresConfig) validate() []string {
	var problems []string
	if c.URL == "" {
		problems = append(problems, "POSTGRES_URL is required")
	}
	if c.MaxConns <= 0 {
		problems = append(problems, "POSTGRES_MAX_CONNS must be greater than 0")
	}
	if c.MinConns <= 0 {
		problems = append(problems, "POSTGRES_MIN_CONNS must be greater than 0")
	}
	if c.ConnMaxLifetime <= 0 {
		problems = append(problems, "POSTGRES_MAX_CONN_LIFETIME must be greater than 0")
	}
	if c.ConnMaxIdleTime <= 0 {
		problems = append(problems, "POSTGRES_MAX_CONN_IDLE_TIME must be greater than 0")
	}
	if c.MigrationsPath == "" {
		problems = append(problems, "POSTGRES_MIGRATIONS_PATH is required")
	}
	return problems
}

func (c MongoDBConfig) validate() []string {
	var problems []string
	if c.URI == "" {
		problems = append(problems, "MONGO_URI is required")
	}
	if c.Database == "" {
		problems = append(problems, "MONGO_DATABASE is required")
	}
	if c.Collection == "" {
		problems = append(problems, "MONGO_COLLECTION is required")
	}
	if c.Timeout <= 0 {
		problems = append(problems, "MONGO_TIMEOUT must be greater than 0")
	}
	if c.MaxPoolSize <= 0 {
		problems = append(problems, "MONGO_MAX_POOL_SIZE must be greater than 0")
	}
	if c.MinPoolSize <= 0 {
		problems = append(problems, "MONGO_MIN_POOL_SIZE must be greater than 0")
	}
	if c.MaxConnIdleTime <= 0 {
		problems = append(problems, "MONGO_MAX_CONN_IDLE_TIME must be greater than 0")
	}
	return problems
}
