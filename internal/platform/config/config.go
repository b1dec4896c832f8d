// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers accepted by StoreConfig.Driver.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and tunes the task-list store.
type StoreConfig struct {
	Driver         string               `koanf:"driver"`
	Mongo          MongoConfig          `koanf:"mongo"`
	Memory         MemoryConfig         `koanf:"memory"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// MongoConfig holds MongoDB connection settings. Transactions require a
// replica set or sharded cluster.
type MongoConfig struct {
	URI                 string        `koanf:"uri"`
	Database            string        `koanf:"database"`
	UsersCollection     string        `koanf:"users_collection"`
	TaskListsCollection string        `koanf:"task_lists_collection"`
	ConnectTimeout      time.Duration `koanf:"connect_timeout"`
	EnsureIndexes       bool          `koanf:"ensure_indexes"`
}

// MemoryConfig holds settings for the in-process store.
type MemoryConfig struct {
	SeedUsers []SeedUser `koanf:"seed_users"`
}

// SeedUser is a user preloaded into the in-process store.
type SeedUser struct {
	ID       string `koanf:"id"`
	Username string `koanf:"username"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig caps store operations per second. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
