package controller

import (
	"bondify-be/internal/dto"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/pkg/serverutils"
	"bondify-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	limiter fiber.Handler
	logger  logger.ILogger
}

func NewAuthController(service service.IAuthService, limiter fiber.Handler, log logger.ILogger) IAuthController {
	return &authController{service: service, limiter: limiter, logger: log}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.limiter, c.Login)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Invalid(ctx, "Invalid login data", err)
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to log in")
	}
	return ctx.JSON(res)
}
