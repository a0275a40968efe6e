package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorHandlerMiddleware converts errors escaping a handler into a JSON
// error body. Handlers normally map their own statuses; this is the fallback
// for fiber errors (body parsing, validation) and anything unexpected.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}

// RequestIDMiddleware tags every request with a correlation id, reusing the
// caller's X-Request-ID when present.
func RequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals("request_id", id)
		ctx.Set("X-Request-ID", id)
		return ctx.Next()
	}
}
