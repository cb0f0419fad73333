package model

// Statistics are the raw counters reported by the data layer.
type Statistics struct {
	TotalUsers        int `json:"total_users"`
	TotalStartups     int `json:"total_startups"`
	ActiveStartups    int `json:"active_startups"`
	PendingStartups   int `json:"pending_startups"`
	CompletedStartups int `json:"completed_startups"`
	RejectedStartups  int `json:"rejected_startups"`
}

// Trends are the headline growth badges shown on the dashboard.
type Trends struct {
	Users    string `json:"users"`
	Startups string `json:"startups"`
	Active   string `json:"active"`
}

// StatisticsView is the payload of GET /api/statistics.
type StatisticsView struct {
	Statistics
	NewToday     int    `json:"new_today"`
	ActivityRate int    `json:"activity_rate"`
	Trends       Trends `json:"trends"`
}
