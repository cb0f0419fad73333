package router

import (
	"context"
	"net/http"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/handler"
	"github.com/garajhub/admin-panel/internal/middleware"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Page      *handler.PageHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Startup   *handler.StartupHandler
	Broadcast *handler.BroadcastHandler
	Analytics *handler.AnalyticsHandler
	Setting   *handler.SettingHandler
	WS        *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds background housekeeping such as the login limiter sweep.
func SetupRouter(
	ctx context.Context,
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// Request ID first so the access log and panic reports can carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("request_id", response.RequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Handler panicked")
		response.Bare(c, http.StatusInternalServerError, response.ErrInternal)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list and allow
	// the session cookie; otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Bare(c, http.StatusNotFound, response.ErrRouteNotFound)
	})

	// ─── Page & assets ─────────────────────────────────────────────────
	router.GET("/", handlers.Page.Index)
	router.GET("/health", handlers.Page.Health)

	staticGroup := router.Group("/static")
	staticGroup.Use(middleware.CacheControl(middleware.CacheAssets))
	{
		staticGroup.StaticFS("/", http.FS(web.Static()))
	}

	api := router.Group("/api")
	api.Use(middleware.CacheControl(middleware.CacheNever))

	// ─── 1. Auth (Public, login rate limited) ──────────────────────────
	loginLimiter := middleware.NewRateLimiter(ctx, cfg.LoginRatePerMinute, time.Minute)
	{
		api.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)
		api.POST("/logout", handlers.Auth.Logout)
		api.GET("/check_auth", handlers.Auth.CheckAuth)
	}

	// ─── 2. Panel (Session required) ───────────────────────────────────
	panel := api.Group("")
	panel.Use(middleware.RequireSession(authService, log))
	{
		panel.GET("/statistics", handlers.Analytics.GetStatistics)
		panel.GET("/analytics/user-growth", handlers.Analytics.GetUserGrowth)
		panel.GET("/analytics/startup-distribution", handlers.Analytics.GetStartupDistribution)
		panel.GET("/activity", handlers.Analytics.GetActivity)
		panel.GET("/activity/stream", handlers.WS.ActivityStream)

		panel.GET("/users", handlers.User.ListUsers)

		panel.GET("/startups", handlers.Startup.ListStartups)
		panel.GET("/startup/:id", handlers.Startup.GetStartup)
		panel.POST("/startup/:id/approve", handlers.Startup.ApproveStartup)
		panel.POST("/startup/:id/reject", handlers.Startup.RejectStartup)

		panel.POST("/broadcast", handlers.Broadcast.Broadcast)

		panel.GET("/settings", handlers.Setting.GetSettings)
		panel.POST("/settings", handlers.Setting.UpdateSettings)
		panel.GET("/admins", handlers.Setting.ListAdmins)
		panel.GET("/backups", handlers.Setting.ListBackups)
	}

	return router
}
