// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"fmt"                        // DSN formatting
	"resume_service/internal/db" // Schema migration
	"strings"                    // Test name sanitizing
	"testing"                    // Test helpers

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // ORM for database operations
	"gorm.io/gorm/logger"   // Silence SQL logging
)

// Open returns a migrated sqlite database private to t.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name) // One shared in-memory database per test
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true, // Same error translation as production
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return conn
}
