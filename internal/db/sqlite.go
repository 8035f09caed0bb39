package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func OpenSQLite(dbPath string, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), newGormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	return bootstrap(database)
}
