package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// ResolveDatabaseURL picks the dialect from a DATABASE_URL value. postgres://
// and postgresql:// URLs go to PostgreSQL; sqlite://, file: and bare paths go
// to SQLite.
func ResolveDatabaseURL(databaseURL string) (string, string) {
	trimmed := strings.TrimSpace(databaseURL)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, trimmed
	case strings.HasPrefix(lower, "sqlite://"):
		return DialectSQLite, trimmed[len("sqlite://"):]
	case strings.HasPrefix(lower, "file:"):
		return DialectSQLite, trimmed[len("file:"):]
	default:
		return DialectSQLite, trimmed
	}
}

// Open connects to the configured store and bootstraps the schema.
func Open(databaseURL string, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	dialect, dsn := ResolveDatabaseURL(databaseURL)
	if dsn == "" {
		return nil, fmt.Errorf("database url %q has no location", databaseURL)
	}

	switch dialect {
	case DialectPostgres:
		return OpenPostgres(dsn, logLevel)
	default:
		return OpenSQLite(dsn, logLevel)
	}
}

func ParseLogLevel(raw string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

func newGormConfig(logLevel gormlogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logLevel,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
		// PostgreSQL keeps microseconds; match it so a returned row equals the stored one.
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

func bootstrap(database *gorm.DB) (*gorm.DB, error) {
	if err := EnsureSchema(database); err != nil {
		if sqlDB, dbErr := database.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return database, nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
