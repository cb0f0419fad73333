package handler

import (
	"errors"
	"net/http"

	"github.com/garajhub/admin-panel/internal/middleware"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StartupHandler serves startup listing, detail and moderation.
type StartupHandler struct {
	startupService *service.StartupService
	log            zerolog.Logger
}

// NewStartupHandler creates a new StartupHandler.
func NewStartupHandler(startupService *service.StartupService, log zerolog.Logger) *StartupHandler {
	return &StartupHandler{
		startupService: startupService,
		log:            log.With().Str("component", "startup_handler").Logger(),
	}
}

// ListStartups godoc
// GET /api/startups?page=1&per_page=20&status=all
// Lists startups of one status, or all statuses concatenated.
func (h *StartupHandler) ListStartups(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	page := h.startupService.List(c.Request.Context(), q)
	writePage(c, page)
}

// GetStartup godoc
// GET /api/startup/:id
// Returns one startup with its owner profile.
func (h *StartupHandler) GetStartup(c *gin.Context) {
	detail, degraded, err := h.startupService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStartupNotFound)
			return
		}
		h.log.Error().Err(err).Str("startup_id", c.Param("id")).Msg("Startup detail failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrStore)
		return
	}

	if degraded {
		response.Degraded(c, detail, nil)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// ApproveStartup godoc
// POST /api/startup/:id/approve
// Sets the startup active and notifies its owner.
func (h *StartupHandler) ApproveStartup(c *gin.Context) {
	err := h.startupService.Approve(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	h.writeTransition(c, err, "Startap tasdiqlandi")
}

// RejectStartup godoc
// POST /api/startup/:id/reject
// Sets the startup rejected and notifies its owner.
func (h *StartupHandler) RejectStartup(c *gin.Context) {
	err := h.startupService.Reject(c.Request.Context(), c.Param("id"), middleware.Actor(c))
	h.writeTransition(c, err, "Startap rad etildi")
}

func (h *StartupHandler) writeTransition(c *gin.Context, err error, message string) {
	// Write failures share one status; the code tells a missing startup apart.
	if err != nil {
		code := response.ErrStore
		if errors.Is(err, repository.ErrNotFound) {
			code = response.ErrStartupNotFound
		}
		h.log.Error().Err(err).Str("startup_id", c.Param("id")).Msg("Status change failed")
		response.Fail(c, http.StatusInternalServerError, code)
		return
	}

	if h.startupService.DemoMode() {
		message += " (demo)"
	}
	response.SuccessMessage(c, http.StatusOK, message, nil)
}
