package middleware

import (
	"errors"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const contextKeySession = "admin_session"

// RequireSession aborts with 401 unless the request carries a live admin
// session cookie. It runs before any handler logic on protected routes.
func RequireSession(auth *service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(service.SessionCookieName)

		sess, err := auth.Authenticate(c.Request.Context(), cookie)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidSession) {
				log.Warn().Err(err).Str("request_id", response.RequestID(c)).Msg("Session lookup failed")
			}
			response.AbortUnauthorized(c)
			return
		}

		c.Set(contextKeySession, sess)
		c.Next()
	}
}

// GetSession returns the session set by RequireSession, or nil.
func GetSession(c *gin.Context) *model.Session {
	if v, ok := c.Get(contextKeySession); ok {
		if sess, ok := v.(*model.Session); ok {
			return sess
		}
	}
	return nil
}

// Actor returns the username of the current admin, or "" outside RequireSession.
func Actor(c *gin.Context) string {
	if sess := GetSession(c); sess != nil {
		return sess.Username
	}
	return ""
}
