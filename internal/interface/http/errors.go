package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/internal/application"
	"github.com/oksasatya/records-api/internal/domain/repository"
	"github.com/oksasatya/records-api/pkg/response"
	"github.com/oksasatya/records-api/pkg/validation"
)

// errorStyle selects how validation failures are rendered.
type errorStyle int

const (
	// fieldErrors renders {"errors": {field: message}}.
	fieldErrors errorStyle = iota
	// firstError renders {"error": <first message>}.
	firstError
)

// renderer maps service errors onto HTTP responses for one resource.
type renderer struct {
	logger   *logrus.Logger
	style    errorStyle
	notFound string
}

func (r renderer) fail(c *gin.Context, err error) {
	var verrs *validation.Errors
	var conflict *repository.ConflictError
	var dataErr *repository.DataError
	switch {
	case errors.As(err, &verrs):
		r.invalid(c, verrs)
	case errors.As(err, &dataErr):
		field := dataErr.Field
		if field == "" {
			field = "payload"
		}
		r.log(c, logrus.InfoLevel, err)
		r.invalid(c, validation.Field(field, "Invalid value for "+field))
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Errors(c, http.StatusUnauthorized, map[string]string{"email": "Invalid credentials"})
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, r.notFound)
	case errors.As(err, &conflict):
		msg := "request conflicts with existing data"
		if conflict.Field != "" {
			msg = conflict.Field + " conflicts with existing data"
		}
		response.Error(c, http.StatusConflict, msg)
	case errors.Is(err, repository.ErrPoolExhausted):
		r.log(c, logrus.WarnLevel, err)
		response.Error(c, http.StatusServiceUnavailable, "server busy, try again")
	case errors.Is(err, repository.ErrConnection):
		r.log(c, logrus.ErrorLevel, err)
		response.Error(c, http.StatusServiceUnavailable, "database unavailable")
	default:
		r.log(c, logrus.ErrorLevel, err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func (r renderer) invalid(c *gin.Context, verrs *validation.Errors) {
	if r.style == firstError {
		response.Error(c, http.StatusBadRequest, verrs.First())
		return
	}
	response.Errors(c, http.StatusBadRequest, verrs.Fields())
}

func (r renderer) log(c *gin.Context, level logrus.Level, err error) {
	if r.logger == nil {
		return
	}
	r.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.FullPath(),
	}).WithError(err).Log(level, "request failed")
}
