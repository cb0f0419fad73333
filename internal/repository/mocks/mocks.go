package mocks

import (
	"context"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/stretchr/testify/mock"
)

// Store is a mock for repository.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Mode() string {
	args := m.Called()
	return args.String(0)
}

func (m *Store) RecentUsers(ctx context.Context, limit int) ([]model.User, error) {
	args := m.Called(ctx, limit)
	if users, ok := args.Get(0).([]model.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	args := m.Called(ctx, telegramID)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) AllTelegramIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) SaveUser(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *Store) GetStartup(ctx context.Context, id string) (*model.Startup, error) {
	args := m.Called(ctx, id)
	if st, ok := args.Get(0).(*model.Startup); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) StartupsByStatus(ctx context.Context, status model.StartupStatus, page, perPage int) ([]model.Startup, int, error) {
	args := m.Called(ctx, status, page, perPage)
	if list, ok := args.Get(0).([]model.Startup); ok {
		return list, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *Store) UpdateStartupStatus(ctx context.Context, id string, status model.StartupStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *Store) Statistics(ctx context.Context) (*model.Statistics, error) {
	args := m.Called(ctx)
	if st, ok := args.Get(0).(*model.Statistics); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

// Messenger is a mock for service.Messenger.
type Messenger struct {
	mock.Mock
}

func (m *Messenger) SendText(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}
