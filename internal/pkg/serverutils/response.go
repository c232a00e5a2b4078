package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func ErrorResponse(message string, fieldErrs ...FieldError) ErrorBody {
	return ErrorBody{Message: message, Errors: fieldErrs}
}

// Fail writes an error body with the given status.
func Fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(ErrorResponse(message))
}

// Invalid writes a 400 with per-field detail when err is a ValidationError.
func Invalid(ctx *fiber.Ctx, message string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(message, verr.Fields...))
	}
	return Fail(ctx, fiber.StatusBadRequest, message)
}
