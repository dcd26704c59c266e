package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/records-api/internal/interface/http"
)

// FinanceModule wires /api/finance; every route requires a bearer token.
type FinanceModule struct {
	Handler *handlers.FinanceHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
}

func NewFinanceModule(h *handlers.FinanceHandler, auth gin.HandlerFunc, rdb *redis.Client) *FinanceModule {
	return &FinanceModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *FinanceModule) Register(rg *gin.RouterGroup) {
	finance := rg.Group("/finance", m.Auth, userLimiter(m.Redis))
	{
		finance.GET("/transactions", m.Handler.List)
		finance.POST("/transactions", m.Handler.Create)
		finance.PUT("/transactions/:id", m.Handler.Update)
		finance.DELETE("/transactions/:id", m.Handler.Delete)
		finance.GET("/summary", m.Handler.Summary)
	}
}
