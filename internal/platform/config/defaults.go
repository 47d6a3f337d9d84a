package config

const (
	defaultServerPort = 8080

	defaultTokenTTL        = "60m"
	defaultLoginRatePerSec = 5.0
	defaultLoginBurst      = 10

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultDatabasePort     = 5432
	defaultDatabaseMaxConns = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key that may be set from the environment needs an entry here so that
// its APP_ variable resolves to the right nested key.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "company-adhesion-service",

		"auth.jwt_secret":                          "",
		"auth.issuer":                               "company-adhesion-service",
		"auth.token_ttl":                            defaultTokenTTL,
		"auth.login_rate_limit.requests_per_second": defaultLoginRatePerSec,
		"auth.login_rate_limit.burst":               defaultLoginBurst,

		"storage.driver":                  "memory",
		"storage.seed":                    false,
		"storage.breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.breaker.timeout":         "30s",
		"storage.breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"database.host":               "",
		"database.port":               defaultDatabasePort,
		"database.user":               "",
		"database.password":           "",
		"database.name":               "",
		"database.sslmode":            "disable",
		"database.max_conns":          defaultDatabaseMaxConns,
		"database.min_conns":          1,
		"database.max_conn_lifetime":  "1h",
		"database.max_conn_idle_time": "30m",
	}
}

// functionDefaults returns the default values for FunctionConfig.
func functionDefaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"dynamodb.table_name": "EmpresasTable",
		"dynamodb.region":     "us-east-1",
		"dynamodb.endpoint":   "",

		"breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"breaker.timeout":         "30s",
		"breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
	}
}
