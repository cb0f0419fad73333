package websocket

import "github.com/garajhub/admin-panel/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventHello    Event = "hello"
	EventActivity Event = "activity"
	EventError    Event = "error"
	EventPong     Event = "pong"
)

// HelloResponse greets a freshly connected panel.
type HelloResponse struct {
	Event   Event  `json:"event"`
	Actor   string `json:"actor"`
	Clients int    `json:"clients"`
}

// ActivityResponse carries one admin event.
type ActivityResponse struct {
	Event Event            `json:"event"`
	Data  model.AdminEvent `json:"data"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
