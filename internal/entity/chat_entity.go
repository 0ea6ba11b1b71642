package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a named container the visualizer groups generated images under.
// UserId is the verified token subject of the owner and never changes.
type Chat struct {
	Id        uuid.UUID
	UserId    string
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
