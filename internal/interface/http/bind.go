package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/records-api/internal/interface/middleware"
	"github.com/oksasatya/records-api/pkg/response"
	"github.com/oksasatya/records-api/pkg/validation"
)

// bindJSON decodes the request body into dst. An empty body leaves dst
// untouched so that field validation reports what is missing.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	response.Errors(c, http.StatusBadRequest, validation.ToDetails(validation.InvalidJSON(err)))
	return false
}

// identity returns the caller id set by middleware.Auth.
func identity(c *gin.Context) (int64, bool) {
	uid, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	return uid, ok
}

// pathID parses the :id segment. Anything but a positive integer cannot
// name an existing row.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}
