package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateImageRequest struct {
	ChatId uuid.UUID  `json:"chat_id"`
	TileId uuid.UUID  `json:"tile_id"`
	HomeId *uuid.UUID `json:"home_id"`
	Prompt string     `json:"prompt"`
}

// UpdateGeneratedImageRequest only ever promotes; kept:false is ignored.
type UpdateGeneratedImageRequest struct {
	Kept *bool `json:"kept"`
}

type GeneratedImageResponse struct {
	Id        uuid.UUID  `json:"id"`
	ChatId    uuid.UUID  `json:"chat_id"`
	TileId    uuid.UUID  `json:"tile_id"`
	HomeId    *uuid.UUID `json:"home_id"`
	Prompt    string     `json:"prompt"`
	ImageUrl  string     `json:"image_url"`
	Kept      bool       `json:"kept"`
	CreatedAt time.Time  `json:"created_at"`
}
