package websocket

import (
	"sync"
	"time"

	"dreamlife-be/internal/pkg/logger"
	"dreamlife-be/pkg/chat"
)

const (
	maxSessionMessages = 50
	sessionIdleTimeout = 2 * time.Hour
	cleanupInterval    = 30 * time.Minute
)

// Session is one visitor's chat transcript. It survives reconnects as
// long as the client presents the same session id.
type Session struct {
	Id           string
	Messages     []ChatMessage
	LastActivity time.Time
}

type Hub struct {
	// Registered clients
	clients map[*Client]struct{}

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Session transcripts keyed by session id
	sessions map[string]*Session

	// Lock for safe map access
	mu sync.RWMutex

	// The answer engine
	engine *chat.Engine

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(engine *chat.Engine, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		sessions:   make(map[string]*Session),
		engine:     engine,
		logger:     log,
	}
}

func (h *Hub) Run() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				if session, found := h.sessions[client.SessionID]; found {
					session.LastActivity = time.Now()
				}
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"session_id": client.SessionID})

		case <-ticker.C:
			h.cleanupInactiveSessions()
		}
	}
}

// AppendMessage records a transcript entry, trimming the history to the
// most recent entries.
func (h *Hub) AppendMessage(sessionId string, msg ChatMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[sessionId]
	if !ok {
		session = &Session{Id: sessionId}
		h.sessions[sessionId] = session
	}

	session.Messages = append(session.Messages, msg)
	session.LastActivity = time.Now()

	if len(session.Messages) > maxSessionMessages {
		session.Messages = session.Messages[len(session.Messages)-maxSessionMessages:]
	}
}

// History returns a copy of the session transcript.
func (h *Hub) History(sessionId string) []ChatMessage {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[sessionId]
	if !ok {
		return nil
	}
	out := make([]ChatMessage, len(session.Messages))
	copy(out, session.Messages)
	return out
}

// ClearSession drops the transcript entirely.
func (h *Hub) ClearSession(sessionId string) {
	h.mu.Lock()
	delete(h.sessions, sessionId)
	h.mu.Unlock()
}

// ActiveSessions reports how many transcripts are currently held.
func (h *Hub) ActiveSessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) cleanupInactiveSessions() {
	cutoff := time.Now().Add(-sessionIdleTimeout)

	h.mu.Lock()
	defer h.mu.Unlock()

	active := make(map[string]struct{}, len(h.clients))
	for client := range h.clients {
		active[client.SessionID] = struct{}{}
	}

	for id, session := range h.sessions {
		if _, connected := active[id]; connected {
			continue
		}
		if session.LastActivity.Before(cutoff) {
			delete(h.sessions, id)
			h.logger.Info("Hub", "Cleaned up inactive session", map[string]interface{}{"session_id": id})
		}
	}
}
