package handler

import (
	"errors"
	"net/http"

	"github.com/garajhub/admin-panel/internal/middleware"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BroadcastHandler sends announcements through the bot.
type BroadcastHandler struct {
	notificationService *service.NotificationService
	log                 zerolog.Logger
}

// NewBroadcastHandler creates a new BroadcastHandler.
func NewBroadcastHandler(notificationService *service.NotificationService, log zerolog.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		notificationService: notificationService,
		log:                 log.With().Str("component", "broadcast_handler").Logger(),
	}
}

// Broadcast godoc
// POST /api/broadcast
// Sends the message to every bot user. Blocks until the paced loop finishes.
func (h *BroadcastHandler) Broadcast(c *gin.Context) {
	var req model.BroadcastRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	result, err := h.notificationService.Broadcast(c.Request.Context(), req, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			response.Fail(c, http.StatusBadRequest, response.ErrEmptyMessage)
			return
		}
		h.log.Error().Err(err).Msg("Broadcast failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Xabar yuborildi", result)
}
