package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/rs/zerolog"
)

const (
	// recentUsersLimit bounds the in-memory search window of the users list.
	recentUsersLimit = 1000

	defaultFirstName = "Noma'lum"
	maskedPhone      = "+998 ** *** ** **"
	dateLayout       = "2006-01-02"
	dateTimeLayout   = "2006-01-02 15:04:05"
)

// UserService lists bot users for the panel.
type UserService struct {
	store    repository.Store
	fallback repository.Store
	log      zerolog.Logger
}

// NewUserService creates a new UserService. fallback answers reads the live store fails.
func NewUserService(store, fallback repository.Store, log zerolog.Logger) *UserService {
	return &UserService{
		store:    store,
		fallback: fallback,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// List returns one page of users, filtered by a case-insensitive name search.
// It never fails: a store error is logged and the demo data set is paged instead.
func (s *UserService) List(ctx context.Context, q model.ListQuery) *model.Page[model.UserListItem] {
	q.Normalize()

	page, err := s.list(ctx, s.store, q)
	if err != nil {
		s.log.Error().Err(err).Msg("Users read failed, serving demo data")
		page, _ = s.list(ctx, s.fallback, q)
		page.Degraded = true
	}
	return page
}

func (s *UserService) list(ctx context.Context, store repository.Store, q model.ListQuery) (*model.Page[model.UserListItem], error) {
	users, err := store.RecentUsers(ctx, recentUsersLimit)
	if err != nil {
		return &model.Page[model.UserListItem]{Items: []model.UserListItem{}, Page: q.Page, PerPage: q.PerPage}, err
	}

	if search := strings.ToLower(q.Search); search != "" {
		filtered := users[:0:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.FirstName), search) ||
				strings.Contains(strings.ToLower(u.LastName), search) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	start, end := q.Bounds(len(users))
	items := make([]model.UserListItem, 0, end-start)
	for i := range users[start:end] {
		items = append(items, formatUser(&users[start+i]))
	}

	return &model.Page[model.UserListItem]{
		Items:   items,
		Page:    q.Page,
		PerPage: q.PerPage,
		Total:   len(users),
	}, nil
}

func formatUser(u *model.User) model.UserListItem {
	item := model.UserListItem{
		ID:        strconv.FormatInt(u.ID, 10),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Status:    u.UserStatus(),
	}
	if item.FirstName == "" {
		item.FirstName = defaultFirstName
	}
	if item.Phone == "" {
		item.Phone = maskedPhone
	}
	if !u.JoinedAt.IsZero() {
		item.JoinedAt = u.JoinedAt.Format(dateLayout)
	}
	return item
}

// Register upserts a user seen by the bot. Demo stores ignore it.
func (s *UserService) Register(ctx context.Context, u *model.User) error {
	if err := s.store.SaveUser(ctx, u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
