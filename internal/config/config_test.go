package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://api.example.com/api"
	cfg.Session.Driver = "redis"
	cfg.Session.RedisAddr = "redis.internal:6379"

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.API.BaseURL != "https://api.example.com/api" {
		t.Errorf("API.BaseURL: got %q, want %q", loaded.API.BaseURL, "https://api.example.com/api")
	}
	if loaded.Session.Driver != "redis" {
		t.Errorf("Session.Driver: got %q, want redis", loaded.Session.Driver)
	}
	if loaded.Session.RedisAddr != "redis.internal:6379" {
		t.Errorf("Session.RedisAddr: got %q, want redis.internal:6379", loaded.Session.RedisAddr)
	}
}

func TestDefaultConfigBaseURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	cfg := DefaultConfig()
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("default base URL: got %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.Session.Driver != "file" {
		t.Errorf("default session driver: got %q, want file", cfg.Session.Driver)
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://staging.example.com/api")

	tmpDir := t.TempDir()
	if err := WriteConfig(tmpDir, DefaultConfig()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if loaded.API.BaseURL != "http://staging.example.com/api" {
		t.Errorf("env override not applied: got %q", loaded.API.BaseURL)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestHomeEnvOverride(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/voxboard-test-home")
	dir, err := Home()
	if err != nil {
		t.Fatalf("Home failed: %v", err)
	}
	if dir != "/tmp/voxboard-test-home" {
		t.Errorf("Home: got %q, want /tmp/voxboard-test-home", dir)
	}
}

func TestBackwardCompatibility(t *testing.T) {
	// An older config without the session or log sections should still parse.
	tmpDir := t.TempDir()
	oldConfig := `version: 1
api:
  base_url: http://localhost:5000/api
`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(oldConfig), 0644); err != nil {
		t.Fatalf("failed to write old config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed on old config: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("base URL: got %q", cfg.API.BaseURL)
	}
}
