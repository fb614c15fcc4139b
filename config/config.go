// Package config loads application settings.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the whole application configuration.
type Config struct {
	// DataDir is where the SQLite database lives.
	DataDir string `koanf:"data_dir"`

	// Port is the HTTP listen port.
	Port string `koanf:"port"`

	// APIKey protects the /api/ endpoints. Required.
	APIKey string `koanf:"api_key"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

func defaults() *Config {
	return &Config{
		DataDir:  filepath.Join(".", "data"),
		Port:     "8080",
		LogLevel: "info",
	}
}

// Load layers configuration sources. Order of precedence (low -> high):
//  1. defaults
//  2. YAML file if CALHEAT_CONFIG is set
//  3. environment variables with prefix CALHEAT_
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("CALHEAT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// CALHEAT_DATA_DIR -> data_dir, CALHEAT_API_KEY -> api_key, ...
	envProvider := env.Provider("CALHEAT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CALHEAT_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api_key must be set (CALHEAT_API_KEY)")
	}
	return cfg, nil
}
