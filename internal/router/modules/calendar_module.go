package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/records-api/internal/interface/http"
)

// CalendarModule wires /api/calendar/events; every route requires a bearer token.
type CalendarModule struct {
	Handler *handlers.CalendarHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
}

func NewCalendarModule(h *handlers.CalendarHandler, auth gin.HandlerFunc, rdb *redis.Client) *CalendarModule {
	return &CalendarModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *CalendarModule) Register(rg *gin.RouterGroup) {
	events := rg.Group("/calendar/events", m.Auth, userLimiter(m.Redis))
	{
		events.GET("", m.Handler.List)
		events.POST("", m.Handler.Create)
		events.PUT("/:id", m.Handler.Update)
		events.DELETE("/:id", m.Handler.Delete)
	}
}
