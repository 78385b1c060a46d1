package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/construction-tracker/backend/internal/integration/persistence/model"
)

// openTestDB opens a fresh in-memory database migrated with every model.
// One connection only: the whole test shares a single memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.BuildingModel{},
		&model.ExpenseCategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
