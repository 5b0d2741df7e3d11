package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultGoEnv                  = "development"
	DefaultDatabaseDriver         = DriverSQLite
	DefaultDatabasePath           = "tv_series.db"
	DefaultLogLevel               = "warn"
	DefaultLogFormat              = "text"
	DefaultStrictWatchStatus      = true
	DefaultEpisodeDurationMinutes = 30
)

type Config struct {
	// Environment
	GoEnv string // GO_ENV

	// Database
	DatabaseDriver string // DATABASE_DRIVER
	DatabasePath   string // DATABASE_PATH
	DatabaseURL    string // DATABASE_URL, postgres DSN

	// Logging
	LogLevel  string // LOG_LEVEL
	LogFormat string // LOG_FORMAT

	// Catalog behavior
	StrictWatchStatus      bool // STRICT_WATCH_STATUS
	DefaultEpisodeDuration int  // DEFAULT_EPISODE_DURATION, minutes
}

// LoadConfig loads configuration from the environment, after merging in
// envFile when it exists. Variables already set in the environment win.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", DefaultGoEnv); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvString(&config.DatabaseDriver, "DATABASE_DRIVER", DefaultDatabaseDriver); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DatabasePath, "DATABASE_PATH", DefaultDatabasePath); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DatabaseURL, "DATABASE_URL", ""); err != nil {
		return nil, err
	}

	// Logging
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", DefaultLogLevel); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", DefaultLogFormat); err != nil {
		return nil, err
	}

	// Catalog behavior
	if err := loadEnvBool(&config.StrictWatchStatus, "STRICT_WATCH_STATUS", DefaultStrictWatchStatus); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.DefaultEpisodeDuration, "DEFAULT_EPISODE_DURATION", DefaultEpisodeDurationMinutes); err != nil {
		return nil, err
	}

	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	config.LogFormat = strings.ToLower(strings.TrimSpace(config.LogFormat))
	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvBool(target *bool, key string, defaultValue bool) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errs []string

	switch c.DatabaseDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			errs = append(errs, "DATABASE_PATH must not be empty for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			errs = append(errs, "DATABASE_URL is required for the postgres driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("DATABASE_DRIVER must be one of: %s, %s", DriverSQLite, DriverPostgres))
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if c.DefaultEpisodeDuration <= 0 {
		errs = append(errs, "DEFAULT_EPISODE_DURATION must be a positive number of minutes")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == DefaultGoEnv
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
