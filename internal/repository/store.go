package repository

import (
	"context"
	"errors"

	"github.com/garajhub/admin-panel/internal/model"
)

var (
	// ErrNotFound is returned when a requested record doesn't exist.
	ErrNotFound = errors.New("not found")
)

// Store modes reported by Mode.
const (
	ModeLive = "live"
	ModeDemo = "demo"
)

// Store is the data source behind the panel. PostgresStore reads the bot's
// database; FixtureStore serves the fixed demo data set.
type Store interface {
	Mode() string

	// RecentUsers returns at most limit users, newest first.
	RecentUsers(ctx context.Context, limit int) ([]model.User, error)
	// GetUserByTelegramID returns ErrNotFound when no user carries telegramID.
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	// AllTelegramIDs lists every user reachable through the bot.
	AllTelegramIDs(ctx context.Context) ([]int64, error)
	// SaveUser upserts by Telegram ID.
	SaveUser(ctx context.Context, u *model.User) error

	GetStartup(ctx context.Context, id string) (*model.Startup, error)
	// StartupsByStatus pages through one status, newest first, and returns the status total.
	StartupsByStatus(ctx context.Context, status model.StartupStatus, page, perPage int) ([]model.Startup, int, error)
	UpdateStartupStatus(ctx context.Context, id string, status model.StartupStatus) error

	Statistics(ctx context.Context) (*model.Statistics, error)
}
