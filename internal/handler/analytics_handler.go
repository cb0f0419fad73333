package handler

import (
	"net/http"

	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves dashboard counters and charts.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetStatistics godoc
// GET /api/statistics
func (h *AnalyticsHandler) GetStatistics(c *gin.Context) {
	view, degraded := h.analyticsService.Statistics(c.Request.Context())
	if degraded {
		response.Degraded(c, view, nil)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// GetUserGrowth godoc
// GET /api/analytics/user-growth?period=week|month
func (h *AnalyticsHandler) GetUserGrowth(c *gin.Context) {
	response.Success(c, http.StatusOK, h.analyticsService.UserGrowth(c.DefaultQuery("period", "month")))
}

// GetStartupDistribution godoc
// GET /api/analytics/startup-distribution
func (h *AnalyticsHandler) GetStartupDistribution(c *gin.Context) {
	chart, total, degraded := h.analyticsService.StartupDistribution(c.Request.Context())
	if degraded {
		response.DegradedWithTotal(c, chart, total)
		return
	}
	response.SuccessWithTotal(c, http.StatusOK, chart, total)
}

// GetActivity godoc
// GET /api/activity
func (h *AnalyticsHandler) GetActivity(c *gin.Context) {
	response.Success(c, http.StatusOK, h.analyticsService.Activity())
}
