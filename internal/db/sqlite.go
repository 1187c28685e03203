package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultOpenTimeout = 15 * time.Second

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return OpenSQLiteWithTimeout(dbPath, defaultOpenTimeout)
}

// OpenSQLiteWithTimeout retries transient open and migration failures (a
// locked database file, typically) with exponential backoff until timeout.
func OpenSQLiteWithTimeout(dbPath string, timeout time.Duration) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logger := log.With().Str("component", "db").Logger()
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)

	var database *gorm.DB
	operation := func() error {
		opened, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: newGormLogger(logger),
		})
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}

		if err := applyEmbeddedMigrations(opened); err != nil {
			closeQuietly(opened)
			var permanent *migrationError
			if errors.As(err, &permanent) {
				return backoff.Permanent(fmt.Errorf("apply embedded migrations: %w", err))
			}
			return fmt.Errorf("apply embedded migrations: %w", err)
		}

		database = opened
		return nil
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = timeout
	notify := func(err error, wait time.Duration) {
		logger.Warn().Err(err).Dur("retry_in", wait).Str("path", dbPath).Msg("database not ready")
	}
	if err := backoff.RetryNotify(operation, strategy, notify); err != nil {
		return nil, err
	}

	return database, nil
}

func newGormLogger(logger zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(
		&logger,
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func closeQuietly(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
