package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedImage is one AI composite produced by the generation service.
// It carries no owner column; ownership is resolved through the parent Chat.
type GeneratedImage struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	TileId    uuid.UUID
	HomeId    *uuid.UUID
	Prompt    string
	ImageUrl  string
	Kept      bool
	CreatedAt time.Time
}
