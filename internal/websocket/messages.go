package websocket

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

const (
	EventUserMessage    = "user_message"
	EventUserTyping     = "user_typing"
	EventGetChatHistory = "get_chat_history"
	EventClearChat      = "clear_chat"

	EventBotMessage  = "bot_message"
	EventBotTyping   = "bot_typing"
	EventChatHistory = "chat_history"
	EventChatCleared = "chat_cleared"
)

const (
	welcomeMessage = "Hello! Welcome to DreamLife. I'm your AI assistant here to help you with questions about dream interpretation, wellness, and our platform. How can I assist you today?"
	clearedMessage = "Chat cleared! Hello again! I'm here to help you with any questions about DreamLife. What would you like to know?"
	troubleMessage = "I'm sorry, I'm having trouble processing your request right now. Please try again!"
)

// Envelope frames every message on the wire in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type UserMessagePayload struct {
	Message string `json:"message"`
}

// ChatMessage is a single entry of a session transcript.
type ChatMessage struct {
	Id         string    `json:"id"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"` // user or bot
	Mode       string    `json:"mode,omitempty"`
	Source     string    `json:"source,omitempty"`
	Similarity float64   `json:"similarity,omitempty"`
}

func newMessageId() string {
	return fmt.Sprintf("%d%06d", time.Now().UnixMilli(), rand.Intn(1000000))
}

func marshalEvent(event string, data interface{}) []byte {
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	payload, _ := json.Marshal(Envelope{Event: event, Data: raw})
	return payload
}
