package model

import (
	"time"

	"github.com/google/uuid"
)

type Tile struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId     string    `gorm:"type:varchar(255);not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	ImageUrl   string    `gorm:"type:text;not null"`
	Size       *string   `gorm:"type:varchar(100)"`
	Price      *float64
	AddCatalog bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Tile) TableName() string {
	return "tiles"
}
