package testutil

import (
	"testing"

	"autoshop_backend/database"
	"autoshop_backend/internal/logger"

	"gorm.io/gorm"
)

// NewTestDB поднимает чистую SQLite-базу в памяти со всеми миграциями.
// Соединение одно: у каждого соединения :memory: своя база.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Init("test")

	db, err := database.Open("sqlite", ":memory:", "test")
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}
	return db
}
