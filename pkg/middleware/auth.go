package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mycrmsystems/elatco-will-system/internal/config"
	"github.com/mycrmsystems/elatco-will-system/internal/sessions"
	"github.com/mycrmsystems/elatco-will-system/internal/tokens"
)

// RequireAdmin returns a Gin middleware that admits only requests carrying a
// valid, non-blacklisted admin bearer token. No admin route handler runs
// without it.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		// tokens revoked at logout are rejected until they expire
		blacklisted, err := sessions.IsAccessTokenBlacklisted(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "blacklist check failed"})
			return
		}
		if blacklisted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}

		claims, err := tokens.VerifyAccessToken(cfg, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if sub, _ := claims["sub"].(string); sub != tokens.AdminSubject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not an admin token"})
			return
		}

		c.Set("claims", map[string]interface{}(claims))
		c.Next()
	}
}
