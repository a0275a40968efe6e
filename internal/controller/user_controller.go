package controller

import (
	"github.com/gofiber/fiber/v2"

	"typing-training-be/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	r.Get("/profile", c.GetProfile)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.Context())
	if err != nil {
		return httpError(ctx, err)
	}
	return ctx.JSON(res)
}
