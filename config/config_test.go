package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	os.Unsetenv("CALHEAT_CONFIG")
	os.Unsetenv("CALHEAT_API_KEY")
	if _, err := Load(); err == nil {
		t.Fatal("Expected error without api key, got nil")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CALHEAT_API_KEY", "secret")
	t.Setenv("CALHEAT_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("Expected api key from env, got %q", cfg.APIKey)
	}
	if cfg.Port != "9999" {
		t.Errorf("Expected port 9999, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: \"7777\"\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("CALHEAT_CONFIG", path)
	t.Setenv("CALHEAT_API_KEY", "secret")
	t.Setenv("CALHEAT_PORT", "8888")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level from file, got %q", cfg.LogLevel)
	}
	if cfg.Port != "8888" {
		t.Errorf("Expected env to win over file, got %q", cfg.Port)
	}
}
