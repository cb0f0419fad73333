package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// SecretKey signs the session cookie.
	SecretKey    string
	SessionTTL   time.Duration
	CookieSecure bool

	// DatabaseURL selects the live store. Empty means demo mode.
	DatabaseURL string
	MaxDBConns  int32
	// RedisURL selects the Redis session store. Empty means in-memory sessions.
	RedisURL string

	BotToken       string
	BroadcastDelay time.Duration

	BcryptCost         int
	LoginRatePerMinute int

	AdminsFile        string
	AdminUsername     string
	AdminPasswordHash string
	AdminFullName     string
	AdminEmail        string

	SiteName        string
	Timezone        string
	ChannelUsername string

	// AllowedOrigins controls HTTP CORS and WebSocket origin validation.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:         getEnv("PORT", "5000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "auto"),
		SecretKey:          getEnv("SECRET_KEY", ""),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CookieSecure:       getEnv("COOKIE_SECURE", "") == "1",
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		MaxDBConns:         int32(getEnvInt("MAX_DB_CONNS", 8)),
		RedisURL:           getEnv("REDIS_URL", ""),
		BotToken:           getEnv("BOT_TOKEN", ""),
		BroadcastDelay:     time.Duration(getEnvInt("BROADCAST_DELAY_MS", 100)) * time.Millisecond,
		BcryptCost:         getEnvInt("BCRYPT_COST", 10),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 20),
		AdminsFile:         getEnv("ADMINS_FILE", ""),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminFullName:      getEnv("ADMIN_FULL_NAME", "Super Admin"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@garajhub.uz"),
		SiteName:           getEnv("SITE_NAME", "GarajHub"),
		Timezone:           getEnv("TIMEZONE", "Asia/Tashkent"),
		ChannelUsername:    getEnv("CHANNEL_USERNAME", "@GarajHub_uz"),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
