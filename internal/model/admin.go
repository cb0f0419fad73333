package model

import "time"

// AdminAccount is a panel operator from the injected admin registry.
type AdminAccount struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"-" yaml:"password_hash"`
	FullName     string `json:"full_name" yaml:"full_name"`
	Email        string `json:"email" yaml:"email"`
	Role         string `json:"role" yaml:"role"`
	CreatedAt    string `json:"created_at" yaml:"created_at"`
}

// AdminSummary is the public view of an account returned after login.
type AdminSummary struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// AdminListItem is one row of GET /api/admins.
type AdminListItem struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt string     `json:"created_at"`
}

// LoginRequest is the payload for admin authentication.
// Presence is checked by AuthService so both fields share one error message.
type LoginRequest struct {
	Username string `json:"username" binding:"max=64"`
	Password string `json:"password" binding:"max=128"`
}
