package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error envelope: a human-readable message
// under an "error" key, nothing more.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}
