package model

import "time"

// StartupStatus enumerates the lifecycle states of a startup.
type StartupStatus string

const (
	StartupStatusPending   StartupStatus = "pending"
	StartupStatusActive    StartupStatus = "active"
	StartupStatusCompleted StartupStatus = "completed"
	StartupStatusRejected  StartupStatus = "rejected"
)

// StartupStatusOrder is the fixed concatenation order of the "all" listing.
var StartupStatusOrder = []StartupStatus{
	StartupStatusActive,
	StartupStatusPending,
	StartupStatusCompleted,
	StartupStatusRejected,
}

// ParseStartupStatus reports whether s names a concrete status.
func ParseStartupStatus(s string) (StartupStatus, bool) {
	switch StartupStatus(s) {
	case StartupStatusPending, StartupStatusActive, StartupStatusCompleted, StartupStatusRejected:
		return StartupStatus(s), true
	}
	return "", false
}

var statusTexts = map[StartupStatus]string{
	StartupStatusPending:   "Kutilmoqda",
	StartupStatusActive:    "Faol",
	StartupStatusCompleted: "Yakunlangan",
	StartupStatusRejected:  "Rad etilgan",
}

var statusIcons = map[StartupStatus]string{
	StartupStatusPending:   "⏳",
	StartupStatusActive:    "▶️",
	StartupStatusCompleted: "✅",
	StartupStatusRejected:  "❌",
}

// Text returns the localized label, or the raw status when unknown.
func (s StartupStatus) Text() string {
	if t, ok := statusTexts[s]; ok {
		return t
	}
	return string(s)
}

// DecoratedText returns the label prefixed with its icon, used by the detail view.
func (s StartupStatus) DecoratedText() string {
	if icon, ok := statusIcons[s]; ok {
		return icon + " " + statusTexts[s]
	}
	return string(s)
}

// Startup is a startup record as stored by the data layer.
type Startup struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      StartupStatus `json:"status"`
	OwnerID     int64         `json:"owner_id"`
	MemberCount int           `json:"member_count"`
	CreatedAt   time.Time     `json:"created_at"`
	StartedAt   *time.Time    `json:"started_at"`
	EndedAt     *time.Time    `json:"ended_at"`
	Results     string        `json:"results"`
	GroupLink   string        `json:"group_link"`
	Logo        string        `json:"logo"`
}

// StartupListItem is one row of GET /api/startups.
type StartupListItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	OwnerName   string        `json:"owner_name"`
	OwnerID     string        `json:"owner_id"`
	Status      StartupStatus `json:"status"`
	StatusText  string        `json:"status_text"`
	CreatedAt   string        `json:"created_at"`
	Description string        `json:"description"`
	MemberCount int           `json:"member_count"`
}

// StartupDetail is the full single-record view of GET /api/startup/:id.
type StartupDetail struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      StartupStatus `json:"status"`
	StatusText  string        `json:"status_text"`
	CreatedAt   string        `json:"created_at"`
	StartedAt   *string       `json:"started_at"`
	EndedAt     *string       `json:"ended_at"`
	Results     string        `json:"results"`
	GroupLink   string        `json:"group_link"`
	Logo        string        `json:"logo"`
	Owner       *OwnerProfile `json:"owner"`
}
