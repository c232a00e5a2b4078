package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers the connection and blocks until the peer leaves.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := &Client{ID: uuid.NewString(), Hub: hub, Conn: conn, Send: make(chan []byte, 64)}
	if !hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
