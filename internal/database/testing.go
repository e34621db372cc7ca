package database

import (
	"testing"

	"safariq-api/internal/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenTestDB returns a migrated, isolated in-memory database closed at test cleanup
func OpenTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := Open(config.DriverMemory, dsn)
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		tb.Fatalf("failed to migrate test database: %v", err)
	}
	tb.Cleanup(func() {
		_ = Close(db)
	})
	return db
}
