// Package config loads the server configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

// Config is the complete server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, like ":8080".
	Addr string `yaml:"addr"`
	// CORSOrigins lists the allowed origins; empty allows all.
	CORSOrigins  []string      `yaml:"cors_origins"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DictionaryConfig configures where the dictionary comes from.
type DictionaryConfig struct {
	Path string `yaml:"path"`
	// Watch reloads the dictionary when the file changes.
	Watch bool `yaml:"watch"`
	// ReloadDebounce is how long the file must stay unchanged before a
	// reload.
	ReloadDebounce time.Duration `yaml:"reload_debounce"`
}

// LookupConfig tunes word lookups.
type LookupConfig struct {
	DefaultDialect        dialect.Dialect `yaml:"default_dialect"`
	MaxCorrectionDistance int             `yaml:"max_correction_distance"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	// Pretty writes human-readable console logs instead of JSON.
	Pretty bool `yaml:"pretty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Dictionary: DictionaryConfig{
			Path:           "data/words.json",
			Watch:          true,
			ReloadDebounce: 500 * time.Millisecond,
		},
		Lookup: LookupConfig{
			DefaultDialect:        dialect.Combined,
			MaxCorrectionDistance: 1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.path is required")
	}
	if c.Dictionary.ReloadDebounce < 0 {
		return fmt.Errorf("dictionary.reload_debounce must not be negative")
	}
	if c.Lookup.MaxCorrectionDistance < 0 {
		return fmt.Errorf("lookup.max_correction_distance must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. Missing fields keep
// their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Logger builds the logger described by the log section.
func (c LogConfig) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var logger zerolog.Logger
	if c.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
