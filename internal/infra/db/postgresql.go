// Package db provides database connection and management functionality.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inventory-tracker/backend/config"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
)

const (
	connectAttempts   = 5
	connectRetryDelay = 2 * time.Second
	pingTimeout       = 2 * time.Second
)

// Database wraps the GORM database connection.
type Database struct {
	db *gorm.DB
}

// NewPostgresConnection opens the inventory database, retrying while the
// server is still starting up.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := open(cfg)
		if err == nil {
			slog.Info("Database connection established",
				"attempt", attempt,
				"max_open_conns", cfg.MaxOpenConns,
				"max_idle_conns", cfg.MaxIdleConns,
			)
			return &Database{db: db}, nil
		}

		lastErr = err
		slog.Warn("Database connection attempt failed", "attempt", attempt, "error", err)
		if attempt < connectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, lastErr)
}

func open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if !Ping(db) {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database did not answer ping")
	}

	return db, nil
}

// Ping reports whether db answers within a short timeout.
func Ping(db *gorm.DB) bool {
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB for ping", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("Database ping failed", "error", err)
		return false
	}

	return true
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Migrate creates or updates the categories, sources and items tables.
func (d *Database) Migrate() error {
	if err := d.db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Database connection closed")
	return nil
}
