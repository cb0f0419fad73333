package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// sendBuffer is the per-client backlog. Events beyond it are dropped for
// that client only.
const sendBuffer = 32

type client struct {
	conn  *websocket.Conn
	actor string
	send  chan interface{}
}

// Hub fans admin events out to every connected panel.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
	log     zerolog.Logger
}

// NewHub creates a new Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     log.With().Str("component", "ws_hub").Logger(),
	}
}

// Publish queues event for every client without blocking.
func (h *Hub) Publish(event model.AdminEvent) {
	msg := ActivityResponse{Event: EventActivity, Data: event}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.log.Warn().Str("actor", c.actor).Msg("Client backlog full, event dropped")
		}
	}
}

// Clients returns the number of connected panels.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve owns conn until the client disconnects or the hub shuts down.
func (h *Hub) Serve(conn *websocket.Conn, actor string) {
	c := &client{conn: conn, actor: actor, send: make(chan interface{}, sendBuffer)}
	if !h.register(c) {
		_ = writeFrame(conn, ErrorResponse{Event: EventError, Error: "server shutting down"})
		writeGoingAway(conn, "")
		conn.Close()
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(c)
	}()

	h.trySend(c, HelloResponse{Event: EventHello, Actor: actor, Clients: h.Clients()})
	h.readLoop(c)

	h.unregister(c)
	<-done
	conn.Close()
}

// Run blocks until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) error {
	<-ctx.Done()

	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	h.log.Info().Msg("Activity hub stopped")
	return nil
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.log.Debug().Str("actor", c.actor).Int("clients", len(h.clients)).Msg("Panel connected")
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) readLoop(c *client) {
	for {
		action, err := readAction(c.conn)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Str("actor", c.actor).Msg("Unexpected close")
			}
			return
		}

		switch action {
		case ActionPing:
			h.trySend(c, PongResponse{Event: EventPong})
		default:
			h.trySend(c, ErrorResponse{Event: EventError, Error: "unknown action: " + string(action)})
		}
	}
}

func (h *Hub) trySend(c *client, v interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- v:
	default:
	}
}

// writeLoop is the only writer of c.conn.
func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		if err := writeFrame(c.conn, msg); err != nil {
			h.log.Debug().Err(err).Str("actor", c.actor).Msg("Write failed")
			// Unblock readLoop so Serve can finish.
			c.conn.SetReadDeadline(time.Now())
			for range c.send {
			}
			return
		}
	}
	writeGoingAway(c.conn, "")
	c.conn.SetReadDeadline(time.Now())
}
