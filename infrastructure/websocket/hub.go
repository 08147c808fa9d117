// Package websocket is the websocket real-time transport.
package websocket

import (
	"chat-vault/domain/event"
	"chat-vault/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	readLimit  = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one websocket connection listening on a fixed set of topics.
type Client struct {
	ID     string
	UserID string
	topics []string
	conn   *websocket.Conn
	send   chan []byte
	hub    *Hub
}

// Hub keeps the open connections per topic and implements the transport.
type Hub struct {
	log        *slog.Logger
	sendBuffer int
	mu         sync.RWMutex
	clients    map[string]*Client
	topics     map[string]map[string]*Client
	register   chan *Client
	unregister chan *Client
}

func NewHub(log *slog.Logger, sendBuffer int) *Hub {
	return &Hub{
		log:        log,
		sendBuffer: sendBuffer,
		clients:    make(map[string]*Client),
		topics:     make(map[string]map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes connections and disconnections until ctx ends.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return nil
		case client := <-h.register:
			h.add(client)
			h.log.Debug("Client connected", "client_id", client.ID, "user_id", client.UserID)
		case client := <-h.unregister:
			h.remove(client)
			h.log.Debug("Client disconnected", "client_id", client.ID)
		}
	}
}

// Publish sends the event to every connection listening on topic.
// A connection whose buffer is full misses the event.
func (h *Hub) Publish(_ context.Context, topic string, kind event.Type, payload any) error {
	data, err := json.Marshal(event.New(topic, kind, payload))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	dropped := 0
	for _, client := range h.topics[topic] {
		select {
		case client.send <- data:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		return fmt.Errorf("%w: %d connections", errors.ErrTransportBackpressure, dropped)
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Stream upgrades the request and attaches the connection to topics.
func (h *Hub) Stream(w http.ResponseWriter, r *http.Request, userID string, topics []string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		topics: topics,
		conn:   conn,
		send:   make(chan []byte, h.sendBuffer),
		hub:    h,
	}
	select {
	case h.register <- client:
	case <-r.Context().Done():
		_ = conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	for _, topic := range client.topics {
		if _, ok := h.topics[topic]; !ok {
			h.topics[topic] = make(map[string]*Client)
		}
		h.topics[topic][client.ID] = client
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	for _, topic := range client.topics {
		delete(h.topics[topic], client.ID)
		if len(h.topics[topic]) == 0 {
			delete(h.topics, topic)
		}
	}
	close(client.send)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		close(client.send)
		delete(h.clients, id)
	}
	h.topics = make(map[string]map[string]*Client)
}

// readPump only watches the connection: clients talk through the HTTP API.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-time.After(writeWait):
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("WebSocket read error", "client_id", c.ID, "error", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
