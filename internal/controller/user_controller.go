package controller

import (
	"bondify-be/internal/dto"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/pkg/serverutils"
	"bondify-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetMe(ctx *fiber.Ctx) error
	UpdatePremium(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
	auth    fiber.Handler
	limiter fiber.Handler
	logger  logger.ILogger
}

func NewUserController(service service.IUserService, auth, limiter fiber.Handler, log logger.ILogger) IUserController {
	return &userController{service: service, auth: auth, limiter: limiter, logger: log}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/", c.limiter, c.Create)
	h.Get("/me", c.auth, c.GetMe)
	h.Patch("/:id/premium", c.auth, serverutils.RequireRole("admin"), c.UpdatePremium)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Invalid(ctx, "Invalid user data", err)
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to create user")
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *userController) GetMe(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals(serverutils.LocalUserID).(uint)

	res, err := c.service.GetById(ctx.Context(), userId)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch user")
	}
	return ctx.JSON(res)
}

func (c *userController) UpdatePremium(ctx *fiber.Ctx) error {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpdatePremiumRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Invalid(ctx, "Invalid premium status", err)
	}

	res, err := c.service.SetPremium(ctx.Context(), id, *req.IsPremium)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to update user")
	}
	return ctx.JSON(res)
}
