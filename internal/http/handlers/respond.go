package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper returned by every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Respond sends a success envelope.
func Respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Fail sends an error envelope.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// BindJSONOrFail ensures body is present and parsable.
func BindJSONOrFail[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		Fail(c, http.StatusBadRequest, "empty request body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

// ListPayload pairs a listing window with its pagination envelope.
type ListPayload struct {
	Data       any `json:"data"`
	Pagination any `json:"pagination"`
}
