package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "DATABASE_PATH", "GIN_MODE", "UPLOAD_DIR",
		"UPLOAD_URL_PATH", "ADMIN_USERNAME", "ADMIN_PASSWORD", "SESSION_TTL",
		"SEED_DATA", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "devfolio.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.UploadDir != "data/uploads" || cfg.UploadURLPath != "/uploads" {
		t.Fatalf("unexpected upload defaults: %q %q", cfg.UploadDir, cfg.UploadURLPath)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "admin123" {
		t.Fatalf("unexpected admin defaults: %q", cfg.AdminUsername)
	}
	if cfg.SessionTTL != 0 {
		t.Fatalf("expected sessions without expiry by default, got %v", cfg.SessionTTL)
	}
	if cfg.SeedData {
		t.Fatalf("expected seeding to be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("SEED_DATA", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr derived from PORT, got %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.AdminUsername != "root" || cfg.AdminPassword != "hunter2" {
		t.Fatalf("admin credentials not read from environment")
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected 12h session ttl, got %v", cfg.SessionTTL)
	}
	if !cfg.SeedData {
		t.Fatalf("expected seeding to be enabled")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
}

func TestLoadIgnoresBadSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load()
	if cfg.SessionTTL != 0 {
		t.Fatalf("expected bad ttl to fall back to no expiry, got %v", cfg.SessionTTL)
	}
}
