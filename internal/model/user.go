package model

import "time"

// User is a bot user as stored by the data layer.
type User struct {
	ID int64 `json:"id"`
	// TelegramID is nil for users imported without a chat identity.
	TelegramID *int64    `json:"user_id,omitempty"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	Username   string    `json:"username"`
	Bio        string    `json:"bio"`
	JoinedAt   time.Time `json:"joined_at"`
}

// UserStatus is derived from the presence of a Telegram identity.
func (u *User) UserStatus() string {
	if u.TelegramID != nil {
		return "active"
	}
	return "inactive"
}

// UserListItem is one row of GET /api/users.
type UserListItem struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	JoinedAt  string `json:"joined_at"`
	Status    string `json:"status"`
}

// OwnerProfile is the owner block embedded in a startup detail view.
type OwnerProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
}
