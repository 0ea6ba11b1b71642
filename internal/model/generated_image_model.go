package model

import (
	"time"

	"github.com/google/uuid"
)

type GeneratedImage struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ChatId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TileId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	HomeId    *uuid.UUID `gorm:"type:uuid"`
	Prompt    string     `gorm:"type:text;not null"`
	ImageUrl  string     `gorm:"type:text;not null"`
	Kept      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (GeneratedImage) TableName() string {
	return "generated_images"
}
