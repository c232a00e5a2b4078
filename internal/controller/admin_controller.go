package controller

import (
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/pkg/serverutils"
	"bondify-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
	auth    fiber.Handler
	logger  logger.ILogger
}

func NewAdminController(service service.IAdminService, auth fiber.Handler, log logger.ILogger) IAdminController {
	return &adminController{service: service, auth: auth, logger: log}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", c.auth, serverutils.RequireRole("admin"))
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

// GetLogs supports ?page, ?limit and ?level (INFO, WARN, ERROR).
func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)
	level := ctx.Query("level")

	res, err := c.service.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch logs")
	}
	return ctx.JSON(res)
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch log")
	}
	return ctx.JSON(res)
}
