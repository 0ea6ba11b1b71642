package controller

import (
	"errors"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/pkg/serverutils"
	"tile-visualizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITileController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetGenerated(ctx *fiber.Ctx) error
}

type tileController struct {
	service service.ITileService
}

func NewTileController(service service.ITileService) ITileController {
	return &tileController{service: service}
}

func (c *tileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tiles")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/generated", c.GetGenerated)
}

func (c *tileController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"tiles": res})
}

func (c *tileController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreateTileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrImageUrlRequired) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("image_url is required"))
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"tile": res})
}

func (c *tileController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrTileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Tile not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"tile": res})
}

func (c *tileController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateTileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Tile not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "tile": res})
}

func (c *tileController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrTileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Tile not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func (c *tileController) GetGenerated(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.GetGenerated(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrTileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Tile not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"generated": res})
}
