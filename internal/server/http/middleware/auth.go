package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// PrincipalContextKey is a gin context key for the authenticated caller.
const PrincipalContextKey = "principal"

// TokenVerifier validates bearer tokens and extracts the caller identity.
type TokenVerifier interface {
	Verify(token string) (*model.Principal, error)
}

// AuthRequired ensures the caller presents a valid bearer token before
// accessing the handler.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(PrincipalContextKey, *principal)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers. Must run after AuthRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(PrincipalContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		principal, ok := val.(model.Principal)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
