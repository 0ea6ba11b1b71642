package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tile is a catalog photo of a tile product.
type Tile struct {
	Id         uuid.UUID
	UserId     string
	Name       string
	ImageUrl   string
	Size       *string
	Price      *float64
	AddCatalog bool
	CreatedAt  time.Time
}
