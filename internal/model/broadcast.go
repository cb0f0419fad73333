package model

import "time"

// BroadcastRequest is the payload of POST /api/broadcast.
type BroadcastRequest struct {
	Message       string `json:"message" binding:"max=4000"`
	RecipientType string `json:"recipient_type" binding:"omitempty,max=32"`
}

// BroadcastResult describes a finished fan-out. It is never persisted.
type BroadcastResult struct {
	ID            string    `json:"id"`
	Message       string    `json:"message"`
	RecipientType string    `json:"recipient_type"`
	SentAt        time.Time `json:"sent_at"`
	SentBy        string    `json:"sent_by"`
	SentCount     int       `json:"sent_count"`
}
