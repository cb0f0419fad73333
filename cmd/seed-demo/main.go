package main

import (
	"context"
	"fmt"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/database"
	"github.com/garajhub/admin-panel/internal/logger"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/jackc/pgx/v5"
)

// Copies the built-in demo users and startups into the configured database.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	demo := repository.NewFixtureStore()
	store := repository.NewPostgresStore(pool)

	fmt.Println("=== Seeding demo data ===")

	users, err := demo.RecentUsers(ctx, 1000)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read demo users")
	}
	for i := range users {
		if err := store.SaveUser(ctx, &users[i]); err != nil {
			log.Fatal().Err(err).Str("name", users[i].FirstName).Msg("Failed to save user")
		}
	}
	fmt.Printf("Upserted %d users\n", len(users))

	var startups []model.Startup
	for _, status := range model.StartupStatusOrder {
		list, _, err := demo.StartupsByStatus(ctx, status, 1, 1000)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read demo startups")
		}
		startups = append(startups, list...)
	}

	// Startups get fresh UUIDs; rerunning the seed adds another copy.
	batch := &pgx.Batch{}
	for _, st := range startups {
		batch.Queue(
			`INSERT INTO startups (name, description, status, owner_id, member_count,
				created_at, started_at, ended_at, results, group_link, logo)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			st.Name, st.Description, st.Status, st.OwnerID, st.MemberCount,
			st.CreatedAt, st.StartedAt, st.EndedAt, st.Results, st.GroupLink, st.Logo,
		)
	}
	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		log.Fatal().Err(err).Msg("Failed to insert startups")
	}

	fmt.Printf("\nSeed completed! Added %d users and %d startups.\n", len(users), len(startups))
}
