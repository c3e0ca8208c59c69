// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kharcha/internal/database"
	"kharcha/internal/store"
)

// allModels is the list of all GORM models to auto-migrate in tests.
var allModels = []interface{}{
	&database.BlobRow{},
	&database.HandleRow{},
}

// SetupTestDB creates an in-memory SQLite database with all tables migrated.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// SetupTestStore opens a Store over a fresh in-memory database and seeds the
// default categories.
func SetupTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db := SetupTestDB(t)
	st, err := store.Open(db)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	st.SeedDefaultCategories()
	return st, db
}
