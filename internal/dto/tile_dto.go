package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTileRequest struct {
	ImageUrl   string   `json:"image_url"`
	Name       string   `json:"name"`
	Size       *string  `json:"size"`
	Price      *float64 `json:"price"`
	AddCatalog *bool    `json:"add_catalog"`
}

// UpdateTileRequest carries a partial payload; only non-nil fields are applied.
type UpdateTileRequest struct {
	Name       *string  `json:"name"`
	Size       *string  `json:"size"`
	Price      *float64 `json:"price"`
	AddCatalog *bool    `json:"add_catalog"`
}

type TileResponse struct {
	Id         uuid.UUID `json:"id"`
	UserId     string    `json:"user_id"`
	Name       string    `json:"name"`
	ImageUrl   string    `json:"image_url"`
	Size       *string   `json:"size"`
	Price      *float64  `json:"price"`
	AddCatalog bool      `json:"add_catalog"`
	CreatedAt  time.Time `json:"created_at"`
}
