package model

import (
	"time"

	"github.com/google/uuid"
)

type Home struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string    `gorm:"type:varchar(255);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ImageUrl  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Home) TableName() string {
	return "homes"
}
