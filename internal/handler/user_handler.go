package handler

import (
	"net/http"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/response"
	"github.com/garajhub/admin-panel/internal/service"
	"github.com/garajhub/admin-panel/internal/validator"
	"github.com/gin-gonic/gin"
)

// UserHandler serves the bot user list.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// GET /api/users?page=1&per_page=20&search=
// Pages through recent users with an optional name search.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var q model.ListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	page := h.userService.List(c.Request.Context(), q)
	writePage(c, page)
}

// writePage renders a list page, flagging demo fallbacks with success=false.
func writePage[T any](c *gin.Context, page *model.Page[T]) {
	pagination := response.NewPagination(page.Page, page.PerPage, page.Total)
	if page.Degraded {
		response.Degraded(c, page.Items, pagination)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, page.Items, pagination)
}
