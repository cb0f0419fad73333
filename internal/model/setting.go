package model

// PanelSettings is the read-only settings view.
type PanelSettings struct {
	SiteName        string `json:"site_name"`
	AdminEmail      string `json:"admin_email"`
	Timezone        string `json:"timezone"`
	BotToken        string `json:"bot_token"`
	ChannelUsername string `json:"channel_username"`
	BotStatus       string `json:"bot_status"`
}

// UpdateSettingsRequest is accepted and logged; nothing is persisted.
type UpdateSettingsRequest map[string]any
