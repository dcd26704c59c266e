package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/records-api/pkg/response"
)

const CtxUserIDKey = "userID"

// TokenParser verifies an access token and returns the user id it carries.
type TokenParser interface {
	Parse(token string) (int64, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header and stores
// the caller's id in the gin context. Requests without one never reach
// the handler.
func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		uid, err := tokens.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// Identity returns the id stored by Auth.
func Identity(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(int64)
	return uid, ok && uid > 0
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
