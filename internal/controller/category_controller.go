package controller

import (
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	GetQuestions(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
	questionService service.IQuestionService
	logger          logger.ILogger
}

func NewCategoryController(categoryService service.ICategoryService, questionService service.IQuestionService, log logger.ILogger) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
		questionService: questionService,
		logger:          log,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	r.Get("/categories", c.GetAll)
	r.Get("/categories/:id", c.GetById)
	r.Get("/questions/:categoryId", c.GetQuestions)
}

func (c *categoryController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.categoryService.GetAll(ctx.Context())
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch categories")
	}
	return ctx.JSON(res)
}

func (c *categoryController) GetById(ctx *fiber.Ctx) error {
	res, err := c.categoryService.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch category")
	}
	return ctx.JSON(res)
}

func (c *categoryController) GetQuestions(ctx *fiber.Ctx) error {
	res, err := c.questionService.GetByCategory(ctx.Context(), ctx.Params("categoryId"))
	if err != nil {
		return handleServiceError(ctx, c.logger, err, "Failed to fetch questions")
	}
	return ctx.JSON(res)
}
