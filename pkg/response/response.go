package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body of simple acknowledgements.
type Message struct {
	Message string `json:"message"`
}

// Created is returned by create and update calls.
type Created struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ErrorBody carries a single error string.
type ErrorBody struct {
	Error string `json:"error"`
}

// FieldErrors carries per-field validation messages.
type FieldErrors struct {
	Errors map[string]string `json:"errors"`
}

func JSON(c *gin.Context, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, body)
}

// Error aborts the request with {"error": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// Errors aborts the request with {"errors": fields}.
func Errors(c *gin.Context, status int, fields map[string]string) {
	c.AbortWithStatusJSON(status, FieldErrors{Errors: fields})
}
