package middleware

import (
	"github.com/gin-gonic/gin"
)

// clientIPHeaders are consulted in order, but only when the direct peer is a
// trusted proxy. Within each header gin walks the list from the right and
// stops at the first address that is not itself trusted.
var clientIPHeaders = []string{"CF-Connecting-IP", "X-Real-IP", "X-Forwarded-For"}

// TrustProxies makes engine read the client address from forwarding headers
// set by the given proxies (IPs or CIDRs). With no proxies every header is
// ignored and the TCP peer address is used.
func TrustProxies(engine *gin.Engine, proxies []string) error {
	engine.ForwardedByClientIP = true
	engine.RemoteIPHeaders = clientIPHeaders
	return engine.SetTrustedProxies(proxies)
}

// RealIP stores the originating client address under "real_ip" for the
// rate limiter and request logs.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", c.ClientIP())
		c.Next()
	}
}
