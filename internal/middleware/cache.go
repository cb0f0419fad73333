package middleware

import "github.com/gin-gonic/gin"

// Cache-Control policies applied by the router.
const (
	// CacheAssets lets browsers keep the embedded panel assets for a day.
	CacheAssets = "public, max-age=86400"
	// CacheNever keeps per-session API answers out of shared caches.
	CacheNever = "no-store"
)

// CacheControl sets policy as the Cache-Control header of every response.
func CacheControl(policy string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", policy)
		c.Next()
	}
}
