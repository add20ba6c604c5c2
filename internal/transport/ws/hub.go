package ws

import (
	"encoding/json"
	"log"
	"sync"

	"avika/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgTurnAppended MessageType = "turn_appended"
	MsgProgress     MessageType = "progress_update"
	MsgComplete     MessageType = "assessment_complete"
	MsgError        MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per session. A session may have several
// viewers attached (chat view and questionnaire view).
type Hub struct {
	conns map[string]map[*Connection]bool // sessionID -> connections

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *broadcastMessage
}

// Connection represents one attached WebSocket client.
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

type broadcastMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub and starts its loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *broadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SessionID] == nil {
				h.conns[conn.SessionID] = make(map[*Connection]bool)
			}
			h.conns[conn.SessionID][conn] = true
			h.mu.Unlock()
			log.Printf("viewer connected to session %s", conn.SessionID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if viewers, ok := h.conns[conn.SessionID]; ok && viewers[conn] {
				delete(viewers, conn)
				close(conn.Send)
				if len(viewers) == 0 {
					delete(h.conns, conn.SessionID)
				}
				log.Printf("viewer disconnected from session %s", conn.SessionID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

func (h *Hub) send(sessionID string, msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("ws payload marshal: %v", err)
		return
	}
	h.broadcast <- &broadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

// TurnAppended implements service.Presenter.
func (h *Hub) TurnAppended(sessionID string, turn model.Turn) {
	h.send(sessionID, MsgTurnAppended, turn)
}

// Progress implements service.Presenter.
func (h *Hub) Progress(sessionID string, progress model.Progress) {
	h.send(sessionID, MsgProgress, progress)
}

// Completed implements service.Presenter.
func (h *Hub) Completed(sessionID string, report *model.Report) {
	h.send(sessionID, MsgComplete, report)
}
