package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/EddieTunji/tv-series-tracker/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a SQLite config pointing at a fresh temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := &config.Config{
		GoEnv:                  "test",
		DatabaseDriver:         config.DriverSQLite,
		DatabasePath:           filepath.Join(t.TempDir(), "tv_series.db"),
		LogLevel:               "warn",
		LogFormat:              "text",
		StrictWatchStatus:      true,
		DefaultEpisodeDuration: 30,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDatabasePath overrides the SQLite file location.
func WithDatabasePath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.DatabasePath = path
	}
}

// WithLenientWatchStatus disables the closed watch status set.
func WithLenientWatchStatus() ConfigOption {
	return func(cfg *config.Config) {
		cfg.StrictWatchStatus = false
	}
}
