package entity

import (
	"time"

	"github.com/google/uuid"
)

// Home is a catalog photo of a home interior.
type Home struct {
	Id        uuid.UUID
	UserId    string
	Name      string
	ImageUrl  string
	CreatedAt time.Time
}
