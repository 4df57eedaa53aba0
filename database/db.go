package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultURL is used when DATABASE_URL is not set.
const DefaultURL = "sqlite:////tmp/test.db"

// Connect opens the database described by databaseURL. Postgres URLs
// (postgres:// or postgresql://) use the postgres driver, sqlite:///<path>
// uses SQLite. The caller owns the handle and must release it with Close.
func Connect(databaseURL string, logLevel logger.LogLevel) (*gorm.DB, error) {
	dialector, isSQLite, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isSQLite {
		// A single connection keeps :memory: databases consistent and
		// serializes writers the way SQLite expects.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func dialectorFor(databaseURL string) (gorm.Dialector, bool, error) {
	if databaseURL == "" {
		databaseURL = DefaultURL
	}
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"):
		return postgres.Open(strings.Replace(databaseURL, "postgres://", "postgresql://", 1)), false, nil
	case strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), false, nil
	case strings.HasPrefix(databaseURL, "sqlite:///"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite:///")), true, nil
	}
	return nil, false, fmt.Errorf("unsupported database url scheme: %q", databaseURL)
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
