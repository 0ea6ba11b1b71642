package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// JwtMiddleware guards a route group. On success the verified token subject
// is available as Locals("user_id").
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Unauthorized"))
	}
	tokenStr := authHeader[7:]

	subject, err := ParseSubject(tokenStr, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
	}

	ctx.Locals("user_id", subject)
	return ctx.Next()
}
