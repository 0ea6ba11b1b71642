package controller

import (
	"errors"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/pkg/serverutils"
	"tile-visualizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHomeController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type homeController struct {
	service service.IHomeService
}

func NewHomeController(service service.IHomeService) IHomeController {
	return &homeController{service: service}
}

func (c *homeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/homes")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *homeController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"homes": res})
}

func (c *homeController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreateHomeRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"home": res})
}

func (c *homeController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Home not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"home": res})
}

func (c *homeController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateHomeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Home not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "home": res})
}

func (c *homeController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrHomeNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Home not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true})
}
