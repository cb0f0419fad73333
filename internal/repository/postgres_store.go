package repository

import (
	"context"
	"errors"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads and writes the bot's users and startups tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Mode() string { return ModeLive }

// Statistics retrieves user and per-status startup counters in one round trip.
func (s *PostgresStore) Statistics(ctx context.Context) (*model.Statistics, error) {
	st := &model.Statistics{}
	err := s.pool.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4)
		 FROM startups`,
		model.StartupStatusActive, model.StartupStatusPending,
		model.StartupStatusCompleted, model.StartupStatusRejected,
	).Scan(&st.TotalUsers, &st.TotalStartups, &st.ActiveStartups,
		&st.PendingStartups, &st.CompletedStartups, &st.RejectedStartups)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func offset(page, perPage int) int {
	return model.Offset(page, perPage)
}
