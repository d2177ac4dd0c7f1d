// Package api defines the uniform JSON envelopes shared by every endpoint
// and the central error responder that maps classified errors onto them.
package api

import "github.com/gin-gonic/gin"

// SuccessResponse is the uniform envelope for successful responses.
type SuccessResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Payload    any    `json:"payload,omitempty"`
}

// ErrorBody carries the status code and message inside an error envelope.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorResponse is the uniform envelope for failed responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Success writes a success envelope with the given status, message and payload.
func Success(c *gin.Context, status int, message string, payload any) {
	c.JSON(status, SuccessResponse{
		StatusCode: status,
		Message:    message,
		Payload:    payload,
	})
}
