package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings for the scorekeeper service.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	HTTP     HTTPConfig     `yaml:"http"`
	Olympics OlympicsConfig `yaml:"olympics"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// SubmitRateLimit is the sustained rate (requests/second) allowed on the
	// score submission route; SubmitRateBurst is the token bucket size.
	SubmitRateLimit float64 `yaml:"submit_rate_limit"`
	SubmitRateBurst int     `yaml:"submit_rate_burst"`
}

// OlympicsConfig holds competition-instance defaults.
type OlympicsConfig struct {
	// DefaultID is the olympics instance assumed when a request does not
	// carry one explicitly.
	DefaultID int64 `yaml:"default_id"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("missing required config: postgres.dsn (or DATABASE_URL)")
	}

	return &cfg, nil
}

func loadConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("missing required config: DATABASE_URL")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("HTTP_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ShutdownTimeout = d
		}
	}
	if v := os.Getenv("SUBMIT_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.HTTP.SubmitRateLimit = f
		}
	}
	if v := os.Getenv("SUBMIT_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.SubmitRateBurst = n
		}
	}
	if v := os.Getenv("OLYMPICS_DEFAULT_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Olympics.DefaultID = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.HTTP.SubmitRateLimit == 0 {
		cfg.HTTP.SubmitRateLimit = 20
	}
	if cfg.HTTP.SubmitRateBurst == 0 {
		cfg.HTTP.SubmitRateBurst = 40
	}
	if cfg.Olympics.DefaultID == 0 {
		cfg.Olympics.DefaultID = 1
	}
}
