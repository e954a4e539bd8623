package config

const (
	defaultServerPort       = 8080
	defaultMaxBodyBytes     = 1 << 20
	defaultCompressionLevel = 5

	defaultPostgresMaxConns = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 20
)

// defaults returns the values loaded before any YAML file. Every key here
// is also addressable from the environment (see buildEnvLookup).
func defaults() map[string]any {
	return map[string]any{
		"server.host":              "0.0.0.0",
		"server.port":              defaultServerPort,
		"server.read_timeout":      "5s",
		"server.write_timeout":     "10s",
		"server.idle_timeout":      "120s",
		"server.request_timeout":   "5s",
		"server.shutdown_timeout":  "10s",
		"server.public_path":       "public",
		"server.max_body_bytes":    defaultMaxBodyBytes,
		"server.compression_level": defaultCompressionLevel,

		"log.level":  "info",
		"log.format": "json",

		"repository.driver":                   DriverMemory,
		"repository.sqlite.path":              "todos.db",
		"repository.postgres.dsn":             "",
		"repository.postgres.max_conns":       defaultPostgresMaxConns,
		"repository.postgres.connect_timeout": "5s",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-spa-service",
	}
}
