package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultDatabaseName = "laundry"

// Config holds process settings. Values come from an optional YAML file
// (CONFIG_FILE) and are overridden by environment variables.
type Config struct {
	DatabaseURL             string        `yaml:"database_url"`
	DatabaseName            string        `yaml:"database_name"`
	Port                    string        `yaml:"port"`
	GinMode                 string        `yaml:"gin_mode"`
	LogLevel                string        `yaml:"log_level"`
	ServiceName             string        `yaml:"service_name"`
	RequestTimeout          time.Duration `yaml:"request_timeout"`
	StrictStatusTransitions bool          `yaml:"strict_status_transitions"`
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaults() Config {
	return Config{
		Port:           "8000",
		LogLevel:       "info",
		ServiceName:    "laundry-api",
		RequestTimeout: 10 * time.Second,
	}
}

// Load reads .env (if present), then CONFIG_FILE, then the environment.
// Missing database settings are not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DatabaseName = getEnv("DATABASE_NAME", cfg.DatabaseName)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT %q", v)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("STRICT_STATUS_TRANSITIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STRICT_STATUS_TRANSITIONS %q: %w", v, err)
		}
		cfg.StrictStatusTransitions = b
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// DBName is the configured database name, or the default one
func (c Config) DBName() string {
	if c.DatabaseName == "" {
		return defaultDatabaseName
	}
	return c.DatabaseName
}
