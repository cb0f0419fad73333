package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/database"
	"github.com/garajhub/admin-panel/internal/handler"
	"github.com/garajhub/admin-panel/internal/logger"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/garajhub/admin-panel/internal/router"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/telegram"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/garajhub/admin-panel/internal/web"
	ws "github.com/garajhub/admin-panel/internal/websocket"
	"github.com/garajhub/admin-panel/internal/worker"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting GarajHub admin panel")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ─── Admin Registry ────────────────────────────────────────────────
	accounts, generated, err := config.LoadAdmins(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load admin accounts")
	}
	if generated != "" {
		log.Warn().
			Str("username", cfg.AdminUsername).
			Str("password", generated).
			Msg("No admin password configured, generated one for this run")
	}
	if cfg.SecretKey == "" {
		log.Warn().Msg("SECRET_KEY not set, sessions will not survive a restart")
	}

	// ─── Data Store (PostgreSQL, or demo data) ─────────────────────────
	fallback := repository.NewFixtureStore()
	var store repository.Store = fallback
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("PostgreSQL unavailable, running in demo mode")
		} else {
			defer pool.Close()
			store = repository.NewPostgresStore(pool)
		}
	} else {
		log.Info().Msg("DATABASE_URL not set, running in demo mode")
	}

	// ─── Session Store (Redis, or in-memory) ───────────────────────────
	var sessions repository.SessionStore = repository.NewMemorySessionStore()
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("Redis unavailable, keeping sessions in memory")
		} else {
			defer rdb.Close()
			sessions = repository.NewRedisSessionStore(rdb)
		}
	}

	// ─── Telegram Bot ──────────────────────────────────────────────────
	var bot *telegram.Client
	var messenger service.Messenger
	if cfg.BotToken != "" {
		bot, err = telegram.New(cfg.BotToken, log)
		if err != nil {
			log.Error().Err(err).Msg("Telegram bot unavailable, notifications disabled")
		} else {
			messenger = bot
		}
	}

	hub := ws.NewHub(log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService, err := service.NewAuthService(cfg, accounts, sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	notificationService := service.NewNotificationService(store, messenger, hub, cfg.BroadcastDelay, log)
	userService := service.NewUserService(store, fallback, log)
	startupService := service.NewStartupService(store, fallback, notificationService, hub, log)
	analyticsService := service.NewAnalyticsService(store, fallback, log)
	panelService := service.NewPanelService(cfg, notificationService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Page:      handler.NewPageHandler(web.Index(), store.Mode, notificationService.Online),
		Auth:      handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.CookieSecure, log),
		User:      handler.NewUserHandler(userService),
		Startup:   handler.NewStartupHandler(startupService, log),
		Broadcast: handler.NewBroadcastHandler(notificationService, log),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Setting:   handler.NewSettingHandler(panelService, authService),
		WS:        handler.NewWSHandler(hub, log, cfg.AllowedOrigins),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, authService, handlers, cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("store", store.Mode()).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return hub.Run(gctx)
	})

	// ─── Start Background Workers ─────────────────────────────────────
	if bot != nil {
		poller := worker.NewBotPoller(bot, userService, bot, log)
		g.Go(func() error {
			return poller.Start(gctx)
		})
	}

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
