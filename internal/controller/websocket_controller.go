package controller

import (
	hub "bondify-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IWebSocketController interface {
	RegisterRoutes(r fiber.Router)
}

type webSocketController struct {
	hub *hub.Hub
}

func NewWebSocketController(h *hub.Hub) IWebSocketController {
	return &webSocketController{hub: h}
}

func (c *webSocketController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ws")
	h.Use(func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("/packs", websocket.New(func(conn *websocket.Conn) {
		hub.ServeWs(c.hub, conn)
	}))
}
