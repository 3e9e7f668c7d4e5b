package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != 0 || cfg.SendBuffer != 32 || cfg.RulesFile != "" || cfg.RoomIdle != time.Minute {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Production() {
		t.Fatalf("default env should not be production")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PUNCH_ADDR", ":9000")
	t.Setenv("PUNCH_ENV", "production")
	t.Setenv("PUNCH_SEED", "42")
	t.Setenv("PUNCH_ROOM_IDLE", "30s")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" || !cfg.Production() || cfg.Seed != 42 || cfg.RoomIdle != 30*time.Second {
		t.Fatalf("environment not applied: %+v", cfg)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PUNCH_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv does not override variables already set; register cleanup for the one it sets
	t.Setenv("PUNCH_LOG_LEVEL", "")
	os.Unsetenv("PUNCH_LOG_LEVEL")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PUNCH_SEED", "not-an-int")
	_, err := Load(missingEnvFile(t))
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err = %v, want parse env error", err)
	}
}

func TestLoadRejectsNonPositiveBuffer(t *testing.T) {
	t.Setenv("PUNCH_SEND_BUFFER", "0")
	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Fatal("expected error")
	}
}
