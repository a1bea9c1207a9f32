// internal/middleware/auth.go
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sampada/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	// HolderKey is the gin context key holding the caller's display name.
	HolderKey = "holder_name"

	// TokenCookie is where the web client keeps its session token.
	TokenCookie = "auth_token"
)

type AuthMiddleware struct {
	tokenService *auth.TokenService
}

func NewAuthMiddleware(ts *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: ts}
}

// Identify resolves the caller from a Bearer header or the session cookie.
// Requests without credentials pass through anonymously.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		slog.Debug("Auth header", "present", authHeader != "")

		var tokenStr string
		switch {
		case authHeader != "":
			if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
				tokenStr = strings.TrimSpace(authHeader[7:])
			}
			if tokenStr == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
				return
			}
		default:
			if cookie, err := c.Cookie(TokenCookie); err == nil {
				tokenStr = cookie
			}
		}

		if tokenStr == "" {
			c.Next()
			return
		}

		name, err := m.tokenService.ParseToken(tokenStr)
		if err != nil {
			slog.Debug("Token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(HolderKey, name)
		c.Next()
	}
}

// Holder returns the caller's display name, if one was resolved.
func Holder(c *gin.Context) (string, bool) {
	v, ok := c.Get(HolderKey)
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
