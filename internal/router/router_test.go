package router

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/records-api/config"
	"github.com/oksasatya/records-api/internal/container"
	"github.com/oksasatya/records-api/internal/infrastructure/postgres"
	"github.com/oksasatya/records-api/pkg/helpers"
)

func newTestRegistry(env string) *Registry {
	gin.SetMode(gin.TestMode)
	c := &container.Container{
		Config: &config.Config{AppName: "Records", Env: env},
		Pool:   postgres.New(nil, time.Second, nil),
		JWT:    helpers.NewJWTManager("test-secret", time.Minute),
	}
	r := NewRegistry(gin.New())
	InitModules(r, c)
	r.RegisterAll()
	return r
}

func routeTable(e *gin.Engine) []string {
	var out []string
	for _, ri := range e.Routes() {
		out = append(out, ri.Method+" "+ri.Path)
	}
	sort.Strings(out)
	return out
}

func TestInitModules_Routes(t *testing.T) {
	r := newTestRegistry("production")

	assert.Equal(t, []string{
		"DELETE /api/calendar/events/:id",
		"DELETE /api/finance/transactions/:id",
		"GET /api/calendar/events",
		"GET /api/finance/summary",
		"GET /api/finance/transactions",
		"GET /api/users/me",
		"GET /db-ping",
		"GET /health",
		"POST /api/calendar/events",
		"POST /api/finance/transactions",
		"POST /api/users/login",
		"POST /api/users/register",
		"PUT /api/calendar/events/:id",
		"PUT /api/finance/transactions/:id",
	}, routeTable(r.Engine))
}

func TestInitModules_DebugOnlyInDevelopment(t *testing.T) {
	r := newTestRegistry("development")
	assert.Contains(t, routeTable(r.Engine), "GET /debug/vars")

	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db_pool"`)
}

func TestInitModules_ProtectedRoutesRejectAnonymous(t *testing.T) {
	r := newTestRegistry("production")

	for _, path := range []string{"/api/calendar/events", "/api/finance/transactions", "/api/finance/summary", "/api/users/me"} {
		w := httptest.NewRecorder()
		r.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRegistry_MiddlewareOnlyOnAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRegistry(gin.New())
	r.Use(func(c *gin.Context) { c.Header("X-Api", "1"); c.Next() })
	r.Add(moduleFunc(func(rg *gin.RouterGroup) { rg.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) }) }))
	r.AddRoot(moduleFunc(func(rg *gin.RouterGroup) { rg.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) }) }))
	r.RegisterAll()

	api := httptest.NewRecorder()
	r.Engine.ServeHTTP(api, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	root := httptest.NewRecorder()
	r.Engine.ServeHTTP(root, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "1", api.Header().Get("X-Api"))
	assert.Empty(t, root.Header().Get("X-Api"))
}

type moduleFunc func(rg *gin.RouterGroup)

func (f moduleFunc) Register(rg *gin.RouterGroup) { f(rg) }
