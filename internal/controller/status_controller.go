package controller

import (
	"github.com/gofiber/fiber/v2"

	"typing-training-be/internal/dto"
	"typing-training-be/internal/service"
)

type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
}

type statusController struct {
	service service.IStatusService
}

func NewStatusController(service service.IStatusService) IStatusController {
	return &statusController{service: service}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/test", c.Test)
}

func (c *statusController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.RootResponse{Message: "Men's Club Training Backend Running"})
}

func (c *statusController) Test(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Check(ctx.Context()))
}
