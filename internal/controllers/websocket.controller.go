package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"routerdash/internal/logger"
	"routerdash/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS middleware on the rest of
		// the API; token auth guards this endpoint.
		return true
	},
}

// HandleWebSocket upgrades an authenticated client onto the live stats
// channel. Browsers cannot set headers on a websocket handshake, so the
// token travels as a query parameter.
func HandleWebSocket(c *gin.Context) {
	log := logger.Component("websocket")

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := services.ValidateToken(token)
	if err != nil {
		log.Warn().Err(err).Str("ip", c.ClientIP()).Msg("websocket auth failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := services.NewClientConnection(c.ClientIP() + "-" + claims.ClientName)

	hub := services.GetWebSocketHub()
	hub.Register(client)

	go readPump(conn, client, hub)
	go writePump(conn, client)
}

// readPump consumes client messages until the connection drops.
func readPump(conn *websocket.Conn, client *services.ClientConnection, hub *services.WebSocketHub) {
	defer func() {
		hub.Unregister(client.ID)
		close(client.Done)
		_ = conn.Close()
	}()

	for {
		var msg services.WebSocketMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "ping":
			select {
			case client.Send <- services.WebSocketMessage{Type: "pong"}:
			default:
			}
		case "unsubscribe":
			return
		}
	}
}

// writePump pushes hub messages to the client.
func writePump(conn *websocket.Conn, client *services.ClientConnection) {
	defer conn.Close()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-client.Done:
			return
		}
	}
}
