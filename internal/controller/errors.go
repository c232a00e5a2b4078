package controller

import (
	"errors"

	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/pkg/serverutils"
	"bondify-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// handleServiceError maps known service errors to their status. Anything
// else is logged and answered with the generic fallback message.
func handleServiceError(ctx *fiber.Ctx, log logger.ILogger, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return serverutils.Fail(ctx, fiber.StatusNotFound, "Category not found")
	case errors.Is(err, service.ErrPackNotFound):
		return serverutils.Fail(ctx, fiber.StatusNotFound, "Conversation pack not found")
	case errors.Is(err, service.ErrUserNotFound):
		return serverutils.Fail(ctx, fiber.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrUsernameTaken):
		return serverutils.Fail(ctx, fiber.StatusConflict, "Username already taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, service.ErrLogNotFound):
		return serverutils.Fail(ctx, fiber.StatusNotFound, "Log not found")
	}

	log.Error("API", fallback, map[string]interface{}{
		"path":  ctx.Path(),
		"error": err.Error(),
	})
	return serverutils.Fail(ctx, fiber.StatusInternalServerError, fallback)
}

func parseUintParam(ctx *fiber.Ctx, name string) (uint, bool) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
