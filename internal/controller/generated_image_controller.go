package controller

import (
	"errors"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/pkg/serverutils"
	"tile-visualizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGeneratedImageController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type generatedImageController struct {
	service service.IGeneratedImageService
}

func NewGeneratedImageController(service service.IGeneratedImageService) IGeneratedImageController {
	return &generatedImageController{service: service}
}

func (c *generatedImageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generated")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Generate)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *generatedImageController) Generate(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Generate(ctx.Context(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPromptRequired):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("prompt is required"))
		case errors.Is(err, service.ErrChatNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Chat not found"))
		case errors.Is(err, service.ErrTileNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Tile not found"))
		case errors.Is(err, service.ErrHomeNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Home not found"))
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"image": res})
}

func (c *generatedImageController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateGeneratedImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return c.mapOwnershipError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true, "image": res})
}

func (c *generatedImageController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return c.mapOwnershipError(ctx, err)
	}

	return ctx.JSON(fiber.Map{"success": true})
}

// mapOwnershipError translates the two-step ownership check: a missing image
// is 404, an image whose parent chat belongs to someone else is 403.
func (c *generatedImageController) mapOwnershipError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrImageNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Image not found"))
	case errors.Is(err, service.ErrImageForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse("Unauthorized"))
	}
	return err
}
