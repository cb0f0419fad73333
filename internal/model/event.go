package model

import "time"

// AdminEvent is pushed to connected panels over the activity stream.
type AdminEvent struct {
	Type        string    `json:"type"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	TargetID    string    `json:"target_id,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	At          time.Time `json:"at"`
}
