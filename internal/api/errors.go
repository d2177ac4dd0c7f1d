package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is a classified request error carrying the HTTP status it maps to.
// Handlers build these from usecase sentinel errors; Fail renders them.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a classified request error.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Fail is the single error responder. Classified errors are rendered with
// their own status; anything else becomes a 500 without leaking details.
func Fail(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorResponse{
			Error: ErrorBody{StatusCode: apiErr.Status, Message: apiErr.Message},
		})
		return
	}

	slog.Error("unhandled request error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: ErrorBody{StatusCode: http.StatusInternalServerError, Message: "internal server error"},
	})
}

// AbortWithError renders a classified error and stops the handler chain.
// Intended for middleware.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{StatusCode: status, Message: message},
	})
}
