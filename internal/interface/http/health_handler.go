package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/pkg/response"
)

// Pinger runs a trivial statement against the database.
type Pinger interface {
	Ping(ctx context.Context) (string, error)
}

type HealthHandler struct {
	DB      Pinger
	Timeout time.Duration
	Logger  *logrus.Logger
}

func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Timeout: 3 * time.Second, Logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "OK"})
}

// DBPing checks a pooled connection end to end.
func (h *HealthHandler) DBPing(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.Timeout)
	defer cancel()
	val, err := h.DB.Ping(ctx)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("db ping failed")
		}
		response.Error(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"database": val})
}
