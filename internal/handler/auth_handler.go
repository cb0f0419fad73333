package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles login, logout and the session check.
type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge int
	cookieSecure bool
	log          zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, ttl time.Duration, cookieSecure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: int(ttl.Seconds()),
		cookieSecure: cookieSecure,
		log:          log.With().Str("component", "auth_handler").Logger(),
	}
}

// Login godoc
// POST /api/login
// Checks the credentials against the admin registry and starts a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	cookie, account, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			response.Fail(c, http.StatusBadRequest, response.ErrMissingField)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.log.Warn().Str("username", req.Username).Str("ip", c.ClientIP()).Msg("Login rejected")
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		default:
			h.log.Error().Err(err).Str("request_id", response.RequestID(c)).Msg("Login failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.setCookie(c, cookie, h.cookieMaxAge)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": model.AdminSummary{
			Username: account.Username,
			FullName: account.FullName,
			Email:    account.Email,
			Role:     account.Role,
		},
	})
}

// Logout godoc
// POST /api/logout
// Destroys the server-side session and expires the cookie. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie, _ := c.Cookie(service.SessionCookieName)
	if err := h.authService.Logout(c.Request.Context(), cookie); err != nil {
		h.log.Error().Err(err).Msg("Logout cleanup failed")
	}

	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckAuth godoc
// GET /api/check_auth
// Reports whether the caller holds a live session.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	cookie, _ := c.Cookie(service.SessionCookieName)

	ok, user := h.authService.CheckAuth(c.Request.Context(), cookie)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": user})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(service.SessionCookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
