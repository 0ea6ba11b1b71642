package controller

import (
	"errors"

	"tile-visualizer-be/internal/pkg/serverutils"
	"tile-visualizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(service service.IUploadService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":bucket", c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	bucket := ctx.Params("bucket")

	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	url, err := c.service.Upload(ctx.Context(), userId, bucket, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBucket):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid bucket"))
		case errors.Is(err, service.ErrFileRequired):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No file provided"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "url": url})
}
