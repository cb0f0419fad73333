package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standardized API response envelope.
type Response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Total      *int              `json:"total,omitempty"`
	Error      string            `json:"error,omitempty"`
	Code       ErrCode           `json:"code,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// Pagination holds pagination information.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination computes total_pages as ceil(total/perPage).
func NewPagination(page, perPage, total int) *Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{Success: true, Data: data})
}

// SuccessMessage sends a successful response with a message and optional data.
func SuccessMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{Success: true, Message: message, Data: data})
}

// SuccessWithPagination sends a successful response with pagination metadata.
func SuccessWithPagination(c *gin.Context, statusCode int, data interface{}, pagination *Pagination) {
	c.JSON(statusCode, Response{Success: true, Data: data, Pagination: pagination})
}

// SuccessWithTotal sends a successful response with a top-level total counter.
func SuccessWithTotal(c *gin.Context, statusCode int, data interface{}, total int) {
	c.JSON(statusCode, Response{Success: true, Data: data, Total: &total})
}

// Degraded sends demo data after a failed live read. The shape matches the
// live response; only success differs.
func Degraded(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{Success: false, Data: data, Pagination: pagination})
}

// DegradedWithTotal is Degraded for responses carrying a top-level total.
func DegradedWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, Response{Success: false, Data: data, Total: &total})
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Response{Error: GetMessage(code), Code: code})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Response{Error: GetMessage(code), Code: code, Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Response{Error: GetMessage(code), Code: code})
}

// AbortUnauthorized aborts with the bare 401 body the panel UI expects.
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": GetMessage(ErrUnauthorized)})
}

// Bare sends {"error": message} without the envelope, used for router-level 404/500.
func Bare(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": GetMessage(code)})
}
