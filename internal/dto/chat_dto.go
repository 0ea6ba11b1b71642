package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	Name string `json:"name"`
}

type UpdateChatRequest struct {
	Name *string `json:"name"`
}

type ChatResponse struct {
	Id        uuid.UUID  `json:"id"`
	UserId    string     `json:"user_id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ChatDetailResponse is the chat page payload: the chat itself plus its
// generated images, newest first.
type ChatDetailResponse struct {
	Chat   *ChatResponse             `json:"chat"`
	Images []*GeneratedImageResponse `json:"images"`
}
