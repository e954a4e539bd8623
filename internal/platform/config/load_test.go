package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-spa-service/internal/platform/config"
)

// repoRoot is where configs/ lives relative to this package.
const repoRoot = "../../.."

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir(repoRoot)

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.PublicPath != "public" {
		t.Errorf("Server.PublicPath = %q, want \"public\"", cfg.Server.PublicPath)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want debug/text", cfg.Log)
	}
	if cfg.Repository.Driver != config.DriverMemory {
		t.Errorf("Repository.Driver = %q, want memory", cfg.Repository.Driver)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir(repoRoot)

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Repository.Driver != config.DriverPostgres {
		t.Errorf("Repository.Driver = %q, want postgres", cfg.Repository.Driver)
	}
	if cfg.Repository.Postgres.MaxConns != 20 {
		t.Errorf("Repository.Postgres.MaxConns = %d, want 20", cfg.Repository.Postgres.MaxConns)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
		t.Errorf("Telemetry = %+v, want enabled otlp with endpoint", cfg.Telemetry)
	}
	// Inherited from base.yaml.
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("Server.MaxBodyBytes = %d, want %d", cfg.Server.MaxBodyBytes, 1<<20)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(repoRoot)
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_PUBLIC_PATH", "/srv/www")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_REPOSITORY_DRIVER", "sqlite")
	t.Setenv("APP_REPOSITORY_SQLITE_PATH", ":memory:")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.PublicPath != "/srv/www" {
		t.Errorf("Server.PublicPath = %q, want /srv/www", cfg.Server.PublicPath)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Repository.Driver != config.DriverSQLite || cfg.Repository.SQLite.Path != ":memory:" {
		t.Errorf("Repository = %+v, want sqlite :memory:", cfg.Repository)
	}
	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn from base.yaml", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 || cfg.Server.CompressionLevel != 5 || cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("Server = %+v, want built-in defaults", cfg.Server)
	}
}

func TestLoad_BadProfile(t *testing.T) {
	t.Chdir(repoRoot)

	for _, profile := range []string{"nonexistent", "", "../etc", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}
