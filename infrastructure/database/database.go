package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"task-manager/domain/models"
	"task-manager/pkg/logger"
)

type DatabaseConfig struct {
	Driver   string // postgres, sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string
	LogLevel string
}

// NewDatabase opens a gorm connection for the configured driver.
func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(config.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func dialectorFor(config DatabaseConfig) (gorm.Dialector, error) {
	switch config.Driver {
	case "", "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(config.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

// newGormLogger sends gorm's SQL log through the application logger.
func newGormLogger(level string) gormlogger.Interface {
	return gormlogger.New(logger.StdLogger(slog.LevelInfo), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseGormLevel(level),
		IgnoreRecordNotFoundError: true,
	})
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// Migrate creates or alters the tasks and users tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Task{},
		&models.User{},
	)
}

// Ping checks that the underlying connection pool can reach the database.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
