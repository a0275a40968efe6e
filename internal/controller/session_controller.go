package controller

import (
	"github.com/gofiber/fiber/v2"

	"typing-training-be/internal/dto"
	"typing-training-be/internal/pkg/serverutils"
	"typing-training-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Complete(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/session", c.Complete)
}

func (c *sessionController) Complete(ctx *fiber.Ctx) error {
	var req dto.CompleteSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Complete(ctx.Context(), &req)
	if err != nil {
		return httpError(ctx, err)
	}
	return ctx.JSON(res)
}
