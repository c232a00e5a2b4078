package bootstrap

import (
	"context"

	"bondify-be/internal/config"
	"bondify-be/internal/controller"
	"bondify-be/internal/eventbus"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/pkg/serverutils"
	"bondify-be/internal/repository/unitofwork"
	"bondify-be/internal/service"
	"bondify-be/internal/websocket"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CategoryController         controller.ICategoryController
	ConversationPackController controller.IConversationPackController
	UserController             controller.IUserController
	AuthController             controller.IAuthController
	AdminController            controller.IAdminController
	WebSocketController        controller.IWebSocketController

	UserService   service.IUserService
	PackAnnouncer *service.PackAnnouncer
	WebSocketHub  *websocket.Hub
	EventBus      eventbus.Bus
	Logger        logger.ILogger

	cfg    *config.Config
	redis  *redis.Client
	cancel context.CancelFunc
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Infrastructure
	bus := eventbus.Connect(cfg.App.NatsURL, sysLogger)
	rdb := NewRedisClient(cfg.App.RedisURL, sysLogger)
	wsHub := websocket.NewHub(rdb, sysLogger)

	// 3. Services
	categoryService := service.NewCategoryService(uowFactory)
	questionService := service.NewQuestionService(uowFactory)
	packService := service.NewConversationPackService(uowFactory, bus, sysLogger)
	userService := service.NewUserService(uowFactory, bus, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret)
	adminService := service.NewAdminService(sysLogger)

	// 4. Middleware shared by controllers
	jwtAuth := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)
	limiter := serverutils.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst).Handler()

	// 5. Controllers
	return &Container{
		CategoryController:         controller.NewCategoryController(categoryService, questionService, sysLogger),
		ConversationPackController: controller.NewConversationPackController(packService, jwtAuth, sysLogger),
		UserController:             controller.NewUserController(userService, jwtAuth, limiter, sysLogger),
		AuthController:             controller.NewAuthController(authService, limiter, sysLogger),
		AdminController:            controller.NewAdminController(adminService, jwtAuth, sysLogger),
		WebSocketController:        controller.NewWebSocketController(wsHub),

		UserService:   userService,
		PackAnnouncer: service.NewPackAnnouncer(bus, wsHub),
		WebSocketHub:  wsHub,
		EventBus:      bus,
		Logger:        sysLogger,

		cfg:   cfg,
		redis: rdb,
	}
}

// Start runs the hub and the pack announcer and makes sure the admin
// account exists.
func (c *Container) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)
	go c.WebSocketHub.Run(ctx)

	if err := c.PackAnnouncer.Start(); err != nil {
		return err
	}
	return c.UserService.EnsureAdmin(ctx, c.cfg.Auth.AdminUsername, c.cfg.Auth.AdminPassword)
}

func (c *Container) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	err := c.EventBus.Close()
	if c.redis != nil {
		if rerr := c.redis.Close(); err == nil {
			err = rerr
		}
	}
	return err
}
