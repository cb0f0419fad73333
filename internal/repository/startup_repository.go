package repository

import (
	"context"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/google/uuid"
)

const startupColumns = `id::text, name, description, status, owner_id, member_count,
	created_at, started_at, ended_at, results, group_link, logo`

func scanStartup(row rowScanner, st *model.Startup) error {
	return row.Scan(&st.ID, &st.Name, &st.Description, &st.Status, &st.OwnerID, &st.MemberCount,
		&st.CreatedAt, &st.StartedAt, &st.EndedAt, &st.Results, &st.GroupLink, &st.Logo)
}

// GetStartup retrieves a startup by ID. Malformed IDs are reported as ErrNotFound.
func (s *PostgresStore) GetStartup(ctx context.Context, id string) (*model.Startup, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	st := &model.Startup{}
	err := scanStartup(s.pool.QueryRow(ctx,
		`SELECT `+startupColumns+` FROM startups WHERE id = $1::uuid`, id), st)
	if err != nil {
		return nil, notFound(err)
	}
	return st, nil
}

// StartupsByStatus retrieves one page of startups in the given status and the status total.
func (s *PostgresStore) StartupsByStatus(ctx context.Context, status model.StartupStatus, page, perPage int) ([]model.Startup, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM startups WHERE status = $1`, status,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+startupColumns+` FROM startups
		 WHERE status = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		status, perPage, offset(page, perPage),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	startups := []model.Startup{}
	for rows.Next() {
		var st model.Startup
		if err := scanStartup(rows, &st); err != nil {
			return nil, 0, err
		}
		startups = append(startups, st)
	}
	return startups, total, rows.Err()
}

// UpdateStartupStatus sets the status of a single startup.
func (s *PostgresStore) UpdateStartupStatus(ctx context.Context, id string, status model.StartupStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE startups SET status = $1 WHERE id = $2::uuid`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
