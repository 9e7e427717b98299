package websocket

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// SessionID ties this connection to a chat transcript
	SessionID string

	// Buffered channel of outbound messages.
	Send chan []byte
}

func (c *Client) emit(event string, data interface{}) {
	select {
	case c.Send <- marshalEvent(event, data):
	default:
		// Buffer full, the write pump will tear the connection down
	}
}

// readPump pumps messages from the websocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error for session %s: %v", c.SessionID, err)
			}
			break
		}

		var envelope Envelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			log.Printf("invalid message from session %s: %v", c.SessionID, err)
			continue
		}

		c.dispatch(&envelope)
	}
}

func (c *Client) dispatch(envelope *Envelope) {
	switch envelope.Event {
	case EventUserMessage:
		var payload UserMessagePayload
		if err := json.Unmarshal(envelope.Data, &payload); err != nil {
			return
		}
		c.handleUserMessage(payload.Message)

	case EventGetChatHistory:
		c.emit(EventChatHistory, c.Hub.History(c.SessionID))

	case EventClearChat:
		c.Hub.ClearSession(c.SessionID)
		c.emit(EventChatCleared, nil)
		c.emit(EventBotMessage, ChatMessage{
			Id:        newMessageId(),
			Message:   clearedMessage,
			Timestamp: time.Now(),
			Type:      "bot",
		})

	case EventUserTyping:
		// Presence only, nothing to do server-side
	}
}

func (c *Client) handleUserMessage(text string) {
	c.Hub.AppendMessage(c.SessionID, ChatMessage{
		Id:        newMessageId(),
		Message:   text,
		Timestamp: time.Now(),
		Type:      "user",
	})

	c.emit(EventBotTyping, true)

	result, err := c.Hub.engine.HandleQuestion(context.Background(), text)

	c.emit(EventBotTyping, false)

	if err != nil {
		c.Hub.logger.Error("WebsocketChat", "Failed to resolve question", map[string]interface{}{
			"session_id": c.SessionID,
			"error":      err.Error(),
		})
		c.emit(EventBotMessage, ChatMessage{
			Id:        newMessageId(),
			Message:   troubleMessage,
			Timestamp: time.Now(),
			Type:      "bot",
		})
		return
	}

	botMessage := ChatMessage{
		Id:         newMessageId(),
		Message:    strings.TrimSpace(result.Answer),
		Timestamp:  time.Now(),
		Type:       "bot",
		Mode:       string(result.Mode),
		Source:     string(result.Source),
		Similarity: result.Similarity,
	}

	c.Hub.AppendMessage(c.SessionID, botMessage)
	c.emit(EventBotMessage, botMessage)
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
