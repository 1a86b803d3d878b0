// Package config handles reading and writing the voxboard home
// directory's config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvAPIURL overrides the configured API base URL when set.
const EnvAPIURL = "VOXBOARD_API_URL"

// EnvHome overrides the default ~/.voxboard home directory when set.
const EnvHome = "VOXBOARD_HOME"

// DefaultBaseURL is the development API origin used when nothing else
// is configured.
const DefaultBaseURL = "http://localhost:5000/api"

const homeDirName = ".voxboard"
const configFile = "config.yaml"

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds settings for the backend REST API.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SessionConfig selects and configures the session store driver.
type SessionConfig struct {
	Driver    string `yaml:"driver"` // "file" | "memory" | "redis"
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// Home returns the voxboard home directory: $VOXBOARD_HOME if set,
// otherwise ~/.voxboard.
func Home() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// ReadConfig reads config.yaml from the given voxboard home directory.
// Returns an error if the file is not found or YAML is malformed.
// The VOXBOARD_API_URL environment variable, when set, overrides the
// configured base URL.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given voxboard home
// directory. Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
// Environment overrides are applied the same way ReadConfig applies them.
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 30,
		},
		Session: SessionConfig{
			Driver:    "file",
			RedisAddr: "localhost:6379",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
	applyEnv(cfg)
	return cfg
}

// applyEnv folds environment overrides into cfg.
func applyEnv(cfg *Config) {
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.API.BaseURL = url
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
}
