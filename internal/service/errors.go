package service

import "errors"

// Sentinel errors the controllers translate into HTTP status codes.
// Not-found covers foreign-owned rows too, so callers cannot probe for the
// existence of other users' records.
var (
	ErrChatNotFound  = errors.New("chat not found")
	ErrTileNotFound  = errors.New("tile not found")
	ErrHomeNotFound  = errors.New("home not found")
	ErrImageNotFound = errors.New("image not found")

	// ErrImageForbidden means the generated image exists but its parent chat
	// belongs to someone else.
	ErrImageForbidden = errors.New("image forbidden")

	ErrImageUrlRequired = errors.New("image_url is required")
	ErrPromptRequired   = errors.New("prompt is required")

	ErrInvalidBucket = errors.New("invalid bucket")
	ErrFileRequired  = errors.New("file required")

	ErrGenerationFailed = errors.New("image generation failed")
)
