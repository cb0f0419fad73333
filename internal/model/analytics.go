package model

// ChartDataset is one series of a Chart.js style chart.
type ChartDataset struct {
	Label           string  `json:"label,omitempty"`
	Data            []int   `json:"data"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BackgroundColor any     `json:"backgroundColor,omitempty"`
	Tension         float64 `json:"tension,omitempty"`
	BorderWidth     int     `json:"borderWidth,omitempty"`
	Hidden          bool    `json:"hidden,omitempty"`
}

// Chart is the labels + datasets pair consumed by the dashboard.
type Chart struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ActivityItem is one entry of the recent-activity feed.
type ActivityItem struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Action      string `json:"action"`
	Description string `json:"description"`
	TimeAgo     string `json:"time_ago"`
	Icon        string `json:"icon"`
}

// BackupItem is one entry of GET /api/backups.
type BackupItem struct {
	ID        int    `json:"id"`
	Filename  string `json:"filename"`
	Size      string `json:"size"`
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
}
