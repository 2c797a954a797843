// Package middleware carries the access policy: every guarded route runs
// its bearer credential through the same stateless decision.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"murmur/internal/apperror"
	"murmur/internal/auth"
)

// ClaimsKey is where the resolved identity claim lands in the gin context.
const ClaimsKey = "user"

// Resolve is the policy decision as a pure function. No token on a required
// route is rejected; no token on an optional route resolves to anonymous
// (nil claims). A present token must verify regardless of optionality.
func Resolve(token string, optional bool, secret []byte) (*auth.Claims, error) {
	if token == "" {
		if optional {
			return nil, nil
		}
		return nil, apperror.Unauthenticated("Unauthorized")
	}
	return auth.Verify(token, secret)
}

// Auth returns a gin middleware enforcing Resolve for the route.
func Auth(secret []byte, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Resolve(extractToken(c), optional, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if claims != nil {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}

// ClaimsFrom returns the identity claim set by Auth, or nil for anonymous
// requests.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
