package controller

import (
	"github.com/gofiber/fiber/v2"

	"typing-training-be/internal/service"
)

const defaultListLimit = 50

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Seed(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Post("/seed", c.Seed)
	r.Get("/content", c.GetAll)
	r.Get("/content/:id", c.Show)
}

func (c *contentController) Seed(ctx *fiber.Ctx) error {
	res, err := c.service.Seed(ctx.Context())
	if err != nil {
		return httpError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *contentController) GetAll(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", defaultListLimit)

	res, err := c.service.GetAll(ctx.Context(), int64(limit))
	if err != nil {
		return httpError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *contentController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return httpError(ctx, err)
	}
	return ctx.JSON(res)
}
