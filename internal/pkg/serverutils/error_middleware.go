package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tile-visualizer-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware is the handler-boundary catch-all: panics and
// errors that escape a controller degrade to a generic 500. The diagnostic
// detail stays in the server log and never reaches the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("http", "panic recovered", map[string]interface{}{
					"path":  ctx.Path(),
					"panic": r,
				})
				err = ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
			}
		}()

		if err := ctx.Next(); err != nil {
			// Fiber's own errors (unmatched route, body too large) keep
			// their status; anything else degrades to a generic 500.
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
			}

			log.Error("http", "unhandled handler error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
		}
		return nil
	}
}
