// Package response writes the JSON envelope shared by every endpoint:
// {success, data?, message?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// exposeErrors controls whether 500 responses carry the underlying error
// message. Enabled in development only.
var exposeErrors = false

// SetExposeErrors toggles internal error detail in 500 responses.
func SetExposeErrors(v bool) { exposeErrors = v }

// Pagination metadata returned with paginated list responses.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// OK sends a 200 response wrapping data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Message sends a 200 response with a message only.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// Created sends a 201 response wrapping data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// Paged sends a paginated list response.
func Paged(c *gin.Context, items interface{}, p Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      items,
			"pagination": p,
		},
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response (missing or malformed credentials).
func Unauthorized(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response (credentials present but wrong).
func Forbidden(c *gin.Context, message string) {
	abort(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	abort(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response. The underlying error is hidden
// unless error exposure is enabled.
func InternalError(c *gin.Context, err error) {
	msg := "internal server error"
	if exposeErrors && err != nil {
		msg = err.Error()
	}
	abort(c, http.StatusInternalServerError, msg)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	abort(c, http.StatusMethodNotAllowed, "method not allowed")
}

func abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "message": message})
}
