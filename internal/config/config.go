package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go-simpler.org/env"

	"family-weight/internal/logger"
)

// Config holds the application settings read from the environment
type Config struct {
	DataFile  string `env:"WEIGHTS_FILE" default:"./data/weights.csv"`
	Columns   string `env:"WEIGHTS_COLUMNS" default:"Дата,Дима,Света,Максим,Саша"`
	AppTitle  string `env:"APP_TITLE" default:"Вес семьи (CSV)"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"console"`
}

// Load reads an optional .env file, then the environment, and validates the result
func Load() (*Config, error) {
	// A missing .env file is normal; the environment alone is enough.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultHeader returns the header used when the data file does not exist yet
func (c *Config) DefaultHeader() []string {
	parts := strings.Split(c.Columns, ",")
	header := make([]string, 0, len(parts))
	for _, p := range parts {
		header = append(header, strings.TrimSpace(p))
	}
	return header
}

// Level returns the parsed log level
func (c *Config) Level() zerolog.Level {
	lvl, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Format returns the parsed log format
func (c *Config) Format() logger.Format {
	f, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return logger.FormatConsole
	}
	return f
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.DataFile) == "" {
		return errors.New("WEIGHTS_FILE is required")
	}

	header := cfg.DefaultHeader()
	if len(header) < 2 {
		return errors.New("WEIGHTS_COLUMNS must list the date column and at least one person")
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if name == "" {
			return errors.New("WEIGHTS_COLUMNS must not contain empty names")
		}
		if seen[name] {
			return fmt.Errorf("WEIGHTS_COLUMNS contains duplicate column %q", name)
		}
		seen[name] = true
	}

	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if _, err := logger.ParseFormat(cfg.LogFormat); err != nil {
		return fmt.Errorf("LOG_FORMAT: %w", err)
	}

	return nil
}
