package service

import (
	"path/filepath"
	"testing"
	"time"

	"tile-visualizer-be/internal/entity"
	"tile-visualizer-be/internal/model"
	"tile-visualizer-be/internal/repository/unitofwork"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestFactory spins up a throwaway sqlite-backed repository factory with
// the full schema migrated.
func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Chat{},
		&model.Tile{},
		&model.Home{},
		&model.GeneratedImage{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return unitofwork.NewRepositoryFactory(db)
}

func chatEntity(userId, name string, createdAt time.Time) *entity.Chat {
	return &entity.Chat{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      name,
		CreatedAt: createdAt,
	}
}

func tileEntity(userId, name string) *entity.Tile {
	return &entity.Tile{
		Id:       uuid.New(),
		UserId:   userId,
		Name:     name,
		ImageUrl: "https://cdn.example.com/tiles/" + name + ".jpg",
	}
}

func homeEntity(userId, name string) *entity.Home {
	return &entity.Home{
		Id:       uuid.New(),
		UserId:   userId,
		Name:     name,
		ImageUrl: "https://cdn.example.com/homes/" + name + ".jpg",
	}
}

func imageEntity(chatId, tileId uuid.UUID) *entity.GeneratedImage {
	return &entity.GeneratedImage{
		Id:       uuid.New(),
		ChatId:   chatId,
		TileId:   tileId,
		Prompt:   "modern kitchen floor",
		ImageUrl: "https://cdn.example.com/generated/" + uuid.NewString() + ".png",
		Kept:     false,
	}
}
