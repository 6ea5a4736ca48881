// Package apperr defines the four client-visible error kinds and the single
// translator that turns any error into the JSON failure envelope.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error carries an HTTP status and a client-safe message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation reports malformed or missing input (400).
func NewValidation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewAuthentication reports missing, invalid or expired credentials (401).
func NewAuthentication(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewAuthorization reports an authenticated but insufficiently privileged
// caller (403).
func NewAuthorization(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NewNotFound reports an absent referenced entity (404).
func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// StatusCode returns the HTTP status an error maps to, 500 for anything
// unclassified.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// Respond writes the failure envelope for err and aborts the request.
// Unclassified errors never leak internals to the client.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.Status, gin.H{
			"status":  "fail",
			"message": appErr.Message,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"status":  "fail",
		"message": "Internal Server Error",
	})
}
