package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
  csrf_secret: "test-csrf-secret-value"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
catalog:
  base_url: "https://catalog.example.com"
  timeout: "5s"
  offers_limit: 25
log:
  level: "info"
  format: "json"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}
	if cfg.Server.CSRFSecret != "test-csrf-secret-value" {
		t.Errorf("Server.CSRFSecret = %q, want %q", cfg.Server.CSRFSecret, "test-csrf-secret-value")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}

	// Catalog
	if cfg.Catalog.BaseURL != "https://catalog.example.com" {
		t.Errorf("Catalog.BaseURL = %q, want %q", cfg.Catalog.BaseURL, "https://catalog.example.com")
	}
	if cfg.Catalog.Timeout != "5s" {
		t.Errorf("Catalog.Timeout = %q, want %q", cfg.Catalog.Timeout, "5s")
	}
	if cfg.Catalog.OffersLimit != 25 {
		t.Errorf("Catalog.OffersLimit = %d, want %d", cfg.Catalog.OffersLimit, 25)
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__DATABASE__DRIVER", "sqlite")
	t.Setenv("APP__LOG__LEVEL", "error")

	// Keys with single underscores must be preserved as-is.
	t.Setenv("APP__CATALOG__OFFERS_LIMIT", "10")
	t.Setenv("APP__CATALOG__BASE_URL", "https://override.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Catalog.OffersLimit != 10 {
		t.Errorf("Catalog.OffersLimit = %d, want 10", cfg.Catalog.OffersLimit)
	}
	if cfg.Catalog.BaseURL != "https://override.example.com" {
		t.Errorf("Catalog.BaseURL = %q, want override", cfg.Catalog.BaseURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantSub string
	}{
		{
			"invalid mode",
			func(y string) string { return strings.Replace(y, `mode: "release"`, `mode: "production"`, 1) },
			"server.mode",
		},
		{
			"invalid port",
			func(y string) string { return strings.Replace(y, "port: 3000", "port: 99999", 1) },
			"server.port",
		},
		{
			"invalid driver",
			func(y string) string { return strings.Replace(y, `driver: "postgres"`, `driver: "oracle"`, 1) },
			"database.driver",
		},
		{
			"release requires strict sslmode",
			func(y string) string { return strings.Replace(y, `sslmode: "require"`, `sslmode: "disable"`, 1) },
			"sslmode",
		},
		{
			"missing catalog base url",
			func(y string) string {
				return strings.Replace(y, `base_url: "https://catalog.example.com"`, `base_url: ""`, 1)
			},
			"catalog.base_url",
		},
		{
			"catalog base url without scheme",
			func(y string) string {
				return strings.Replace(y, `base_url: "https://catalog.example.com"`, `base_url: "catalog.example.com"`, 1)
			},
			"catalog.base_url",
		},
		{
			"invalid catalog timeout",
			func(y string) string { return strings.Replace(y, `timeout: "5s"`, `timeout: "soon"`, 1) },
			"catalog.timeout",
		},
		{
			"negative offers limit",
			func(y string) string { return strings.Replace(y, "offers_limit: 25", "offers_limit: -1", 1) },
			"catalog.offers_limit",
		},
		{
			"invalid log level",
			func(y string) string { return strings.Replace(y, `level: "info"`, `level: "verbose"`, 1) },
			"log.level",
		},
		{
			"invalid log format",
			func(y string) string { return strings.Replace(y, `format: "json"`, `format: "xml"`, 1) },
			"log.format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.mutate(testYAML))
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestValidate_Normalization(t *testing.T) {
	yaml := strings.Replace(testYAML,
		`base_url: "https://catalog.example.com"`,
		`base_url: "https://catalog.example.com///"`, 1)
	yaml = strings.Replace(yaml, "offers_limit: 25", "offers_limit: 0", 1)

	path := writeTestConfig(t, yaml)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Catalog.BaseURL != "https://catalog.example.com" {
		t.Errorf("BaseURL = %q, want trailing slashes stripped", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.OffersLimit != 50 {
		t.Errorf("OffersLimit = %d, want default 50", cfg.Catalog.OffersLimit)
	}
}

func TestCatalogTimeoutDuration(t *testing.T) {
	c := CatalogConfig{Timeout: "5s"}
	if got := c.TimeoutDuration(10 * time.Second); got != 5*time.Second {
		t.Errorf("TimeoutDuration = %v, want 5s", got)
	}

	empty := CatalogConfig{}
	if got := empty.TimeoutDuration(10 * time.Second); got != 10*time.Second {
		t.Errorf("TimeoutDuration = %v, want fallback 10s", got)
	}
}
