// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the HTTP service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Storage   StorageConfig   `koanf:"storage"`
	Database  DatabaseConfig  `koanf:"database"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// AuthConfig holds bearer token and login settings.
type AuthConfig struct {
	JWTSecret      string          `koanf:"jwt_secret"`
	Issuer         string          `koanf:"issuer"`
	TokenTTL       time.Duration   `koanf:"token_ttl"`
	LoginRateLimit RateLimitConfig `koanf:"login_rate_limit"`
	Users          []UserConfig    `koanf:"users"`
}

// UserConfig is a statically configured account. PasswordHash is a bcrypt hash.
type UserConfig struct {
	ID           string   `koanf:"id"`
	Username     string   `koanf:"username"`
	PasswordHash string   `koanf:"password_hash"`
	Roles        []string `koanf:"roles"`
}

// RateLimitConfig holds token-bucket settings. A zero rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// StorageConfig selects and tunes the repository backend.
type StorageConfig struct {
	Driver  string               `koanf:"driver"`
	Seed    bool                 `koanf:"seed"`
	Breaker CircuitBreakerConfig `koanf:"breaker"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"sslmode"`
	MaxConns        int           `koanf:"max_conns"`
	MinConns        int           `koanf:"min_conns"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
}

// DynamoDBConfig holds settings for the DynamoDB company table.
type DynamoDBConfig struct {
	TableName string `koanf:"table_name"`
	Region    string `koanf:"region"`
	// Endpoint overrides the AWS endpoint, e.g. for DynamoDB Local.
	Endpoint string `koanf:"endpoint"`
}

// FunctionConfig holds configuration for the serverless registration function.
type FunctionConfig struct {
	Log      LogConfig            `koanf:"log"`
	DynamoDB DynamoDBConfig       `koanf:"dynamodb"`
	Breaker  CircuitBreakerConfig `koanf:"breaker"`
}
