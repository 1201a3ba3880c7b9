package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-connect/internal/model"
	"campus-connect/pkg/response"
)

const scopeKey = "x-caller-scope"

// Auth resolves the caller identity from the X-User-ID header and
// stores it as a model.Scope in the gin context. Requests without an
// identity are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromGin returns the scope set by Auth, or a zero Scope.
func ScopeFromGin(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
