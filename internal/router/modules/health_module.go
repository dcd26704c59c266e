package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/records-api/internal/interface/http"
)

// HealthModule serves the unauthenticated probes at the engine root.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Health)
	rg.GET("/db-ping", m.Handler.DBPing)
}
