package controller

import (
	"bondify-be/internal/dto"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/pkg/serverutils"
	"bondify-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationPackController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetWeekly(ctx *fiber.Ctx) error
	GetFeatured(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	GetQuestions(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	AddQuestions(ctx *fiber.Ctx) error
}

type conversationPackController struct {
	service service.IConversationPackService
	auth    fiber.Handler
	logger  logger.ILogger
}

// NewConversationPackController takes the JWT middleware guarding admin writes.
func NewConversationPackController(service service.IConversationPackService, auth fiber.Handler, log logger.ILogger) IConversationPackController {
	return &conversationPackController{service: service, auth: auth, logger: log}
}

func (c *conversationPackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversation-packs")
	h.Get("/", c.GetAll)
	// Static paths before :id.
	h.Get("/weekly", c.GetWeekly)
	h.Get("/featured", c.GetFeatured)
	h.Get("/:id", c.GetById)
	h.Get("/:id/questions", c.GetQuestions)

	admin := serverutils.RequireRole("admin")
	h.Post("/", c.auth, admin, c.Create)
	h.Post("/:id/questions", c.auth, admin, c.AddQuestions)
}

func (c *conversationPackController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch conversation packs")
	}
	return ctx.JSON(res)
}

func (c *conversationPackController) GetWeekly(ctx *fiber.Ctx) error {
	res, err := c.service.GetWeekly(ctx.Context())
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch weekly conversation pack")
	}
	return ctx.JSON(res)
}

func (c *conversationPackController) GetFeatured(ctx *fiber.Ctx) error {
	res, err := c.service.GetFeatured(ctx.Context())
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch featured conversation packs")
	}
	return ctx.JSON(res)
}

func (c *conversationPackController) GetById(ctx *fiber.Ctx) error {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid pack ID")
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch conversation pack")
	}
	return ctx.JSON(res)
}

func (c *conversationPackController) GetQuestions(ctx *fiber.Ctx) error {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid pack ID")
	}

	res, err := c.service.GetQuestions(ctx.Context(), id)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch pack questions")
	}
	return ctx.JSON(res)
}

func (c *conversationPackController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateConversationPackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Invalid(ctx, "Invalid conversation pack data", err)
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to create conversation pack")
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *conversationPackController) AddQuestions(ctx *fiber.Ctx) error {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid pack ID")
	}

	var req dto.AddPackQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.Invalid(ctx, "Invalid questions data", err)
	}

	res, err := c.service.AddQuestions(ctx.Context(), id, req.Questions)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to add questions to pack")
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}
