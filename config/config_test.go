package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Port != "3000" {
		t.Errorf("unexpected port: %s", cfg.App.Port)
	}
	if cfg.App.TokenTTL != 24*time.Hour {
		t.Errorf("expected token ttl 24h, got %v", cfg.App.TokenTTL)
	}
	if cfg.Redis.CacheTTL != 5*time.Minute {
		t.Errorf("expected cache ttl 5m, got %v", cfg.Redis.CacheTTL)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`app:
  port: "8080"
  jwt_secret: from-file
  token_ttl: "2h"
  standard_monthly_hours: 160

database:
  host: db.local
  port: 13306
  user: hr
  password: secret
  name: hr_test
  conn_max_lifetime: "15m"

redis:
  addr: "localhost:6379"
  cache_ttl: "30s"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PORT", "23306")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("expected port from file, got %s", cfg.App.Port)
	}
	if cfg.App.JWTSecret != "from-env" {
		t.Errorf("expected env to override secret, got %s", cfg.App.JWTSecret)
	}
	if cfg.Database.Port != 23306 {
		t.Errorf("expected env to override port, got %d", cfg.Database.Port)
	}
	if cfg.App.StandardMonthlyHours != 160 {
		t.Errorf("expected 160 standard hours, got %v", cfg.App.StandardMonthlyHours)
	}
	if cfg.Database.ConnMaxLifetime != 15*time.Minute {
		t.Errorf("expected 15m lifetime, got %v", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Redis.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s cache ttl, got %v", cfg.Redis.CacheTTL)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("TOKEN_TTL", "forever")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid token ttl")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{Host: "db.local", Port: 3306, User: "hr", Password: "pw", Name: "hr_db"}

	want := "hr:pw@tcp(db.local:3306)/hr_db?charset=utf8mb4&parseTime=True&loc=Local"
	if got := cfg.DSN(); got != want {
		t.Fatalf("unexpected DSN. want %s got %s", want, got)
	}

	wantMigrate := "mysql://hr:pw@tcp(db.local:3306)/hr_db?multiStatements=true"
	if got := cfg.MigrateURL(); got != wantMigrate {
		t.Fatalf("unexpected migrate URL. want %s got %s", wantMigrate, got)
	}
}
