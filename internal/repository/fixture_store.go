package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/garajhub/admin-panel/internal/model"
)

// FixtureStore serves a fixed demo data set. It is used when no database is
// configured and as the fallback for failed live reads.
//
// Status updates mutate the in-memory copy so approve/reject round-trips are
// observable in demo mode; everything else is read-only.
type FixtureStore struct {
	mu       sync.RWMutex
	users    []model.User
	startups []model.Startup
	stats    model.Statistics
}

// NewFixtureStore returns a fresh copy of the demo data set.
func NewFixtureStore() *FixtureStore {
	return &FixtureStore{
		users:    demoUsers(),
		startups: demoStartups(),
		stats: model.Statistics{
			TotalUsers:        125,
			TotalStartups:     42,
			ActiveStartups:    18,
			PendingStartups:   8,
			CompletedStartups: 12,
			RejectedStartups:  4,
		},
	}
}

func (s *FixtureStore) Mode() string { return ModeDemo }

func (s *FixtureStore) RecentUsers(_ context.Context, limit int) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.users) || limit < 0 {
		limit = len(s.users)
	}
	out := make([]model.User, limit)
	copy(out, s.users[:limit])
	return out, nil
}

func (s *FixtureStore) GetUserByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.TelegramID != nil && *u.TelegramID == telegramID {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// AllTelegramIDs is always empty: demo chat IDs are not real recipients.
func (s *FixtureStore) AllTelegramIDs(context.Context) ([]int64, error) {
	return []int64{}, nil
}

// SaveUser is a no-op; the demo data set never grows.
func (s *FixtureStore) SaveUser(context.Context, *model.User) error {
	return nil
}

func (s *FixtureStore) GetStartup(_ context.Context, id string) (*model.Startup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.startups {
		if st.ID == id {
			found := st
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FixtureStore) StartupsByStatus(_ context.Context, status model.StartupStatus, page, perPage int) ([]model.Startup, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []model.Startup{}
	for _, st := range s.startups {
		if st.Status == status {
			matched = append(matched, st)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := offset(page, perPage)
	if start >= total || perPage <= 0 {
		return []model.Startup{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// UpdateStartupStatus succeeds for any ID; unknown IDs are ignored.
func (s *FixtureStore) UpdateStartupStatus(_ context.Context, id string, status model.StartupStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.startups {
		if s.startups[i].ID == id {
			s.startups[i].Status = status
		}
	}
	return nil
}

func (s *FixtureStore) Statistics(context.Context) (*model.Statistics, error) {
	st := s.stats
	return &st, nil
}

func demoDate(value string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	return t
}

func demoUsers() []model.User {
	tg := func(id int64) *int64 { return &id }
	return []model.User{
		{ID: 1, TelegramID: tg(1), FirstName: "Ali", LastName: "Valiyev", Phone: "+998901234567",
			Username: "alivaliyev", Bio: "Startup asoschisi", JoinedAt: demoDate("2024-01-15 00:00:00")},
		{ID: 2, TelegramID: tg(2), FirstName: "Dilnoza", LastName: "Rahimova", Phone: "+998901234568",
			Username: "dilnozarahimova", JoinedAt: demoDate("2024-01-14 00:00:00")},
		{ID: 3, TelegramID: tg(3), FirstName: "Shavkat", LastName: "Karimov", Phone: "+998901234569",
			Username: "shavkatkarimov", JoinedAt: demoDate("2024-01-13 00:00:00")},
	}
}

func demoStartups() []model.Startup {
	started := demoDate("2024-01-12 10:00:00")
	return []model.Startup{
		{
			ID:          "1",
			Name:        "Food Delivery App",
			Description: "Oziq-ovqat yetkazib berish ilovasi. Restoranlar va foydalanuvchilar o'rtasida platforma.",
			Status:      model.StartupStatusActive,
			OwnerID:     1,
			MemberCount: 5,
			CreatedAt:   demoDate("2024-01-10 14:30:00"),
			StartedAt:   &started,
			GroupLink:   "https://t.me/fooddeliverygroup",
		},
		{
			ID:          "2",
			Name:        "E-commerce Platform",
			Description: "Onlayn do'kon platformasi",
			Status:      model.StartupStatusPending,
			OwnerID:     2,
			MemberCount: 3,
			CreatedAt:   demoDate("2024-01-12 09:00:00"),
		},
		{
			ID:          "3",
			Name:        "Education App",
			Description: "Masofaviy ta'lim platformasi",
			Status:      model.StartupStatusCompleted,
			OwnerID:     3,
			MemberCount: 8,
			CreatedAt:   demoDate("2024-01-08 11:00:00"),
		},
	}
}
