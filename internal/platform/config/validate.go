package config

import (
	"errors"
	"fmt"
)

const (
	// minJWTSecretLen is the HS256 key size in bytes.
	minJWTSecretLen = 32

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	errs := []error{
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Auth.validate(),
		c.Storage.validate(),
	}
	if c.Storage.Driver == StoragePostgres {
		errs = append(errs, c.Database.validate())
	}
	return errors.Join(errs...)
}

// Validate checks the serverless function configuration.
func (c *FunctionConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Log.validate(), c.Breaker.validate("breaker"))
	if c.DynamoDB.TableName == "" {
		errs = append(errs, errors.New("dynamodb.table_name must not be empty"))
	}
	if c.DynamoDB.Region == "" {
		errs = append(errs, errors.New("dynamodb.region must not be empty"))
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes, got %d", minJWTSecretLen, len(a.JWTSecret)))
	}
	if a.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if a.LoginRateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("auth.login_rate_limit.requests_per_second must not be negative"))
	}
	if a.LoginRateLimit.RequestsPerSecond > 0 && a.LoginRateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("auth.login_rate_limit.burst must be >= 1, got %d", a.LoginRateLimit.Burst))
	}

	seen := make(map[string]bool, len(a.Users))
	for i, u := range a.Users {
		if u.ID == "" || u.Username == "" || u.PasswordHash == "" {
			errs = append(errs, fmt.Errorf("auth.users[%d] requires id, username and password_hash", i))
		}
		if seen[u.Username] {
			errs = append(errs, fmt.Errorf("auth.users[%d]: duplicate username %q", i, u.Username))
		}
		seen[u.Username] = true
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	switch s.Driver {
	case StorageMemory, StoragePostgres:
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be one of: memory, postgres; got %q", s.Driver))
	}

	errs = append(errs, s.Breaker.validate("storage.breaker"))
	return errors.Join(errs...)
}

func (cb *CircuitBreakerConfig) validate(prefix string) error {
	var errs []error

	if cb.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.max_failures must be >= 1, got %d", prefix, cb.MaxFailures))
	}
	if cb.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	if d.Host == "" {
		errs = append(errs, errors.New("database.host must not be empty when storage.driver is postgres"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("database.name must not be empty when storage.driver is postgres"))
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Errorf("database.port must be between 1 and 65535, got %d", d.Port))
	}
	if d.MaxConns < 0 || d.MinConns < 0 || (d.MaxConns > 0 && d.MinConns > d.MaxConns) {
		errs = append(errs, fmt.Errorf("database pool sizes invalid: min_conns=%d max_conns=%d", d.MinConns, d.MaxConns))
	}

	return errors.Join(errs...)
}
