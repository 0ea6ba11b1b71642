package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateHomeRequest struct {
	ImageUrl string `json:"image_url"`
	Name     string `json:"name"`
}

type UpdateHomeRequest struct {
	Name *string `json:"name"`
}

type HomeResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    string    `json:"user_id"`
	Name      string    `json:"name"`
	ImageUrl  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
