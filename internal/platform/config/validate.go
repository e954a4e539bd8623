package config

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	minCompressionLevel = 1
	maxCompressionLevel = 9
)

// Validate checks all configuration values and returns aggregated errors.
// Client settings are only checked when the remote driver is selected.
func (c *Config) Validate() error {
	errs := []error{
		c.Server.validate(),
		c.Log.validate(),
		c.Repository.validate(),
		c.Telemetry.validate(),
	}
	if c.Repository.Driver == DriverRemote {
		errs = append(errs, c.Client.validate())
	}
	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 0 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 0 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.PublicPath == "" {
		errs = append(errs, errors.New("server.public_path must not be empty"))
	}
	if s.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be positive, got %d", s.MaxBodyBytes))
	}
	if s.CompressionLevel < minCompressionLevel || s.CompressionLevel > maxCompressionLevel {
		errs = append(errs, fmt.Errorf("server.compression_level must be between %d and %d, got %d",
			minCompressionLevel, maxCompressionLevel, s.CompressionLevel))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (r *RepositoryConfig) validate() error {
	switch r.Driver {
	case DriverMemory, DriverRemote:
		return nil
	case DriverSQLite:
		if r.SQLite.Path == "" {
			return errors.New("repository.sqlite.path must not be empty")
		}
		return nil
	case DriverPostgres:
		var errs []error
		if r.Postgres.DSN == "" {
			errs = append(errs, errors.New("repository.postgres.dsn must not be empty"))
		}
		if r.Postgres.MaxConns < 1 {
			errs = append(errs, fmt.Errorf("repository.postgres.max_conns must be >= 1, got %d", r.Postgres.MaxConns))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("repository.driver must be one of: %s, %s, %s, %s; got %q",
			DriverMemory, DriverSQLite, DriverPostgres, DriverRemote, r.Driver)
	}
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.base_url must be an absolute URL, got %q", cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst must be >= 1 when limiting, got %d",
			cl.RateLimit.Burst))
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
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
