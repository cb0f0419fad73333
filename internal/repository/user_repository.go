package repository

import (
	"context"

	"github.com/garajhub/admin-panel/internal/model"
)

const userColumns = `id, user_id, first_name, last_name, phone, username, bio, joined_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *model.User) error {
	return row.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.LastName, &u.Phone, &u.Username, &u.Bio, &u.JoinedAt)
}

// RecentUsers retrieves the newest users, at most limit.
func (s *PostgresStore) RecentUsers(ctx context.Context, limit int) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY joined_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserByTelegramID retrieves a user by their Telegram chat ID.
func (s *PostgresStore) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	u := &model.User{}
	err := scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, telegramID), u)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// AllTelegramIDs lists the chat IDs of every user known to the bot.
func (s *PostgresStore) AllTelegramIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT user_id FROM users WHERE user_id IS NOT NULL ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SaveUser inserts a user or refreshes the profile fields of an existing one.
// Phone and bio are only overwritten when the new value is non-empty.
func (s *PostgresStore) SaveUser(ctx context.Context, u *model.User) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO users (user_id, first_name, last_name, phone, username, bio)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			username   = EXCLUDED.username,
			phone      = COALESCE(NULLIF(EXCLUDED.phone, ''), users.phone),
			bio        = COALESCE(NULLIF(EXCLUDED.bio, ''), users.bio)
		 RETURNING id, joined_at`,
		u.TelegramID, u.FirstName, u.LastName, u.Phone, u.Username, u.Bio,
	).Scan(&u.ID, &u.JoinedAt)
}
