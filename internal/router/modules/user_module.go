package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/records-api/internal/interface/http"
	"github.com/oksasatya/records-api/internal/interface/middleware"
)

// UserModule wires account routes under /api/users.
// Public: POST /register, POST /login. Protected: GET /me.
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")

	// 10 req/min per IP on credential endpoints
	credLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	users.POST("/register", credLimiter, m.Handler.Register)
	users.POST("/login", credLimiter, m.Handler.Login)

	users.GET("/me", m.Auth, userLimiter(m.Redis), m.Handler.Me)
}

// userLimiter is the per-identity limit shared by all protected routes.
func userLimiter(rdb *redis.Client) gin.HandlerFunc {
	return middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil)
}
