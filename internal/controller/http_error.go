package controller

import (
	"github.com/gofiber/fiber/v2"

	"typing-training-be/internal/pkg/apperr"
	"typing-training-be/internal/pkg/serverutils"
)

// httpError maps a service failure onto its HTTP status: configuration → 500,
// validation → 400, not-found → 404. Untyped errors (store faults) surface
// as a generic 500.
func httpError(ctx *fiber.Ctx, err error) error {
	if kind, ok := apperr.KindOf(err); ok {
		switch kind {
		case apperr.KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case apperr.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case apperr.KindConfiguration:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
