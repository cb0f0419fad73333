package handler

import (
	"net/http"

	"github.com/garajhub/admin-panel/internal/response"
	"github.com/gin-gonic/gin"
)

// PageHandler serves the panel page and the health check.
type PageHandler struct {
	index    []byte
	mode     func() string
	botReady func() bool
}

// NewPageHandler creates a new PageHandler. mode reports live or demo.
func NewPageHandler(index []byte, mode func() string, botReady func() bool) *PageHandler {
	return &PageHandler{index: index, mode: mode, botReady: botReady}
}

// Index godoc
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.index)
}

// Health godoc
// GET /health
func (h *PageHandler) Health(c *gin.Context) {
	bot := "offline"
	if h.botReady() {
		bot = "online"
	}
	response.Success(c, http.StatusOK, gin.H{
		"status": "ok",
		"mode":   h.mode(),
		"bot":    bot,
	})
}
