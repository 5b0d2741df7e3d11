package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog" // use slog for structured logging
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
	"github.com/EddieTunji/tv-series-tracker/internal/config"
)

var (
	// ErrLocked is returned when another process holds the database file.
	ErrLocked = errors.New("database is in use by another session")
	// ErrForeignKeysDisabled is returned when SQLite refuses to enforce
	// foreign keys, without which cascades silently stop working.
	ErrForeignKeysDisabled = errors.New("sqlite foreign key enforcement unavailable")
)

// Database owns the GORM handle and, for SQLite, the file lock.
type Database struct {
	DB     *gorm.DB
	driver string
	lock   *flock.Flock
	logger *slog.Logger
}

// Connect opens the configured store, verifies it and migrates the schema.
func Connect(cfg *config.Config, logger *slog.Logger) (*Database, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	gormCfg := &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		TranslateError: true,
	}

	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		d := &Database{DB: db, driver: config.DriverPostgres, logger: logger}
		if err := d.Migrate(context.Background()); err != nil {
			_ = d.Close()
			return nil, err
		}
		logger.Info("Connected to the database successfully", slog.String("driver", d.driver))
		return d, nil
	case config.DriverSQLite:
		return connectSQLite(cfg.DatabasePath, gormCfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

func connectSQLite(path string, gormCfg *gorm.Config, logger *slog.Logger) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure database directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	d := &Database{DB: db, driver: config.DriverSQLite, lock: lock, logger: logger}

	sqlDB, err := db.DB()
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	// Pragmas are per connection; a single connection keeps them in force.
	sqlDB.SetMaxOpenConns(1)

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var enabled int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("query foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		_ = d.Close()
		return nil, ErrForeignKeysDisabled
	}

	if err := d.Migrate(context.Background()); err != nil {
		_ = d.Close()
		return nil, err
	}

	logger.Info("Connected to the database successfully",
		slog.String("driver", d.driver),
		slog.String("path", path),
	)
	return d, nil
}

// Driver reports the dialect name in use.
func (d *Database) Driver() string {
	return d.driver
}

// Migrate creates or updates every catalog table.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	d.logger.Debug("Database migrations applied successfully")
	return nil
}

// Reset drops every catalog table and recreates the empty schema.
func (d *Database) Reset(ctx context.Context) error {
	// DropTable orders dependents before their parents.
	if err := d.DB.WithContext(ctx).Migrator().DropTable(models.All()...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := d.Migrate(ctx); err != nil {
		return err
	}
	d.logger.Info("database reset", slog.String("driver", d.driver))
	return nil
}

// Close releases the connection pool and the file lock.
func (d *Database) Close() error {
	var errs []error
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close database: %w", err))
			}
		}
	}
	if d.lock != nil {
		if err := d.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release lock: %w", err))
		}
		d.lock = nil
	}
	return errors.Join(errs...)
}

func gormLogLevel(level string) gormLogger.LogLevel {
	if level == "debug" {
		return gormLogger.Warn
	}
	return gormLogger.Silent
}
