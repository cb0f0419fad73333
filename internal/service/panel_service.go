package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/rs/zerolog"
)

const demoBackups = 5

// PanelService serves the settings view and the backup list.
type PanelService struct {
	cfg      *config.Config
	notifier *NotificationService
	now      func() time.Time
	log      zerolog.Logger
}

// NewPanelService creates a new PanelService.
func NewPanelService(cfg *config.Config, notifier *NotificationService, log zerolog.Logger) *PanelService {
	return &PanelService{
		cfg:      cfg,
		notifier: notifier,
		now:      time.Now,
		log:      log.With().Str("component", "panel_service").Logger(),
	}
}

// Settings returns the read-only settings view. The bot token is masked.
func (s *PanelService) Settings() model.PanelSettings {
	status := "offline"
	if s.notifier.Online() {
		status = "online"
	}
	return model.PanelSettings{
		SiteName:        s.cfg.SiteName,
		AdminEmail:      s.cfg.AdminEmail,
		Timezone:        s.cfg.Timezone,
		BotToken:        MaskToken(s.cfg.BotToken),
		ChannelUsername: s.cfg.ChannelUsername,
		BotStatus:       status,
	}
}

// UpdateSettings only logs the submitted keys; settings are not persisted.
func (s *PanelService) UpdateSettings(req model.UpdateSettingsRequest, actor string) {
	keys := make([]string, 0, len(req))
	for k := range req {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s.log.Info().Strs("keys", keys).Str("by", actor).Msg("Settings update received")
}

// Backups returns the fixed demo backup list, newest first.
func (s *PanelService) Backups() []model.BackupItem {
	now := s.now()
	items := make([]model.BackupItem, 0, demoBackups)
	for i := 0; i < demoBackups; i++ {
		items = append(items, model.BackupItem{
			ID:        i + 1,
			Filename:  fmt.Sprintf("backup_2024_01_%d.json", i+10),
			Size:      humanize.Bytes(uint64(1_500_000 + i*300_000)),
			CreatedAt: now.AddDate(0, 0, -i).Format(time.RFC3339),
			CreatedBy: "admin",
		})
	}
	return items
}

// MaskToken keeps the first four characters of a secret.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	head := token
	if len(head) > 4 {
		head = head[:4]
	}
	return head + strings.Repeat("*", 12)
}
