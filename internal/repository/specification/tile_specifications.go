package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByTileID struct {
	TileID uuid.UUID
}

func (s ByTileID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tile_id = ?", s.TileID)
}
