package modules

import (
	"expvar"
	"sync"

	"github.com/gin-gonic/gin"
)

// PoolStats reports connection pool occupancy.
type PoolStats interface {
	Stats() map[string]int64
}

var (
	publishOnce sync.Once
	statsMu     sync.RWMutex
	// current is the pool behind the "db_pool" expvar; the latest
	// registered module wins.
	current PoolStats
)

func currentPoolStats() any {
	statsMu.RLock()
	defer statsMu.RUnlock()
	if current == nil {
		return map[string]int64{}
	}
	return current.Stats()
}

// DebugModule exposes expvar at /debug/vars, including the pool counters
// under "db_pool". Only mounted in development.
type DebugModule struct {
	Pool PoolStats
}

func NewDebugModule(pool PoolStats) *DebugModule { return &DebugModule{Pool: pool} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	statsMu.Lock()
	current = m.Pool
	statsMu.Unlock()
	publishOnce.Do(func() {
		expvar.Publish("db_pool", expvar.Func(currentPoolStats))
	})
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
