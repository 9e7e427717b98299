package websocket

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs handles a websocket chat connection. The client may pass a
// session_id query param to resume an earlier transcript.
func ServeWs(hub *Hub, c *websocket.Conn) {
	sessionId := c.Query("session_id")
	if sessionId == "" {
		sessionId = uuid.New().String()
	}

	client := &Client{Hub: hub, Conn: c, SessionID: sessionId, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	client.emit(EventBotMessage, ChatMessage{
		Id:        newMessageId(),
		Message:   welcomeMessage,
		Timestamp: time.Now(),
		Type:      "bot",
	})

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
