package repository

import (
	"fmt"
	"testing"

	"NHLSync/internal/model"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a test-scoped in-memory database with the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Team{},
		&model.Player{},
		&model.Game{},
		&model.Play{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
