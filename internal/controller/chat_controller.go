package controller

import (
	"errors"

	"tile-visualizer-be/internal/dto"
	"tile-visualizer-be/internal/pkg/serverutils"
	"tile-visualizer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chats")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *chatController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"chats": res})
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	// Empty body is fine; the chat name gets a timestamp default.
	var req dto.CreateChatRequest
	_ = ctx.BodyParser(&req)

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"chat": res})
}

func (c *chatController) Show(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Chat not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"chat": res.Chat, "images": res.Images})
}

func (c *chatController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Chat not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true, "chat": res})
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse("Chat not found"))
		}
		return err
	}

	return ctx.JSON(fiber.Map{"success": true})
}
