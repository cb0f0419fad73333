package handler

import (
	"net/http"

	"github.com/garajhub/admin-panel/internal/middleware"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/gin-gonic/gin"
)

// SettingHandler serves the settings, admin and backup views.
type SettingHandler struct {
	panelService *service.PanelService
	authService  *service.AuthService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(panelService *service.PanelService, authService *service.AuthService) *SettingHandler {
	return &SettingHandler{panelService: panelService, authService: authService}
}

// GetSettings godoc
// GET /api/settings
// The bot token is returned masked.
func (h *SettingHandler) GetSettings(c *gin.Context) {
	response.Success(c, http.StatusOK, h.panelService.Settings())
}

// UpdateSettings godoc
// POST /api/settings
// Accepts any JSON object and logs it. Nothing is persisted.
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	h.panelService.UpdateSettings(req, middleware.Actor(c))
	response.SuccessMessage(c, http.StatusOK, "Sozlamalar saqlandi", nil)
}

// ListAdmins godoc
// GET /api/admins
func (h *SettingHandler) ListAdmins(c *gin.Context) {
	response.Success(c, http.StatusOK, h.authService.Admins())
}

// ListBackups godoc
// GET /api/backups
func (h *SettingHandler) ListBackups(c *gin.Context) {
	response.Success(c, http.StatusOK, h.panelService.Backups())
}
