package model

import "time"

// Session is the server-side state behind an admin session cookie.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	FullName      string    `json:"full_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// Summary returns the user block echoed by check_auth.
func (s *Session) Summary() AdminSummary {
	return AdminSummary{
		Username: s.Username,
		FullName: s.FullName,
		Role:     s.Role,
	}
}
