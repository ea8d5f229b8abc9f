package handlers

import (
	ws "github.com/campbaraisa/camp_admin/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// WebSocketUpgrade rejects plain HTTP requests on socket routes.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ActivityFeedSocket keeps an admin dashboard subscribed to the live
// activity stream until the connection drops.
var ActivityFeedSocket = websocket.New(func(conn *websocket.Conn) {
	token, ok := conn.Locals("user").(*jwt.Token)
	if !ok {
		conn.Close()
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		conn.Close()
		return
	}
	idStr, _ := claims["user_id"].(string)
	adminID, err := uuid.Parse(idStr)
	if err != nil {
		conn.Close()
		return
	}

	client := &ws.Client{AdminID: adminID, Conn: conn}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	// Reads are discarded; the socket is push-only. The loop exits when the
	// client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
})
