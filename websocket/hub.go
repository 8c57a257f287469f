package websocket

import (
	"context"
	"sync"

	"github.com/anjiri1684/course_hours/logger"
	"github.com/anjiri1684/course_hours/services"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	ID   string
	Conn Conn
}

// Hub fans consumption events out to every connected client.
type Hub struct {
	log        *logger.Logger
	register   chan *Client
	unregister chan *Client
	broadcast  chan services.ConsumptionEvent
	done       chan struct{}

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub(log *logger.Logger, buffer int) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	if buffer <= 0 {
		buffer = 64
	}
	return &Hub{
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan services.ConsumptionEvent, buffer),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
	}
}

// Register adds c to the hub. After Run has returned, c is closed instead.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		_ = c.Conn.Close()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues ev for broadcast. Events are dropped when the queue is full.
func (h *Hub) Publish(ev services.ConsumptionEvent) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("consumption feed queue full, event dropped", "kind", ev.Kind, "student_id", ev.StudentID)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				_ = c.Conn.Close()
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			h.log.Debug("feed client registered", "client_id", c.ID)
		case c := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			h.log.Debug("feed client unregistered", "client_id", c.ID)
		case ev := <-h.broadcast:
			h.send(ev)
		}
	}
}

func (h *Hub) send(ev services.ConsumptionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.Conn.WriteJSON(ev); err != nil {
			h.log.Warn("feed write failed, dropping client", "client_id", c.ID, "error", err)
			_ = c.Conn.Close()
			delete(h.clients, c)
		}
	}
}
