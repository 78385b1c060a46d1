//go:build integration

// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/construction-tracker/backend/internal/integration/persistence/model"
)

// NewDB opens a fresh in-memory SQLite database with the full schema
// migrated. Each scenario gets its own database so state never leaks
// between scenarios.
func NewDB() (*gorm.DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.BuildingModel{},
		&model.ExpenseCategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
