// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"wednest/config"
	"wednest/services/session"
	"wednest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionContextKey = "session"

// SessionAuthMiddleware resolves the bearer token into a live session and
// stores it in the Gin context. The token itself was issued by the backend at
// login; when a JWT secret is configured it is also validated here so expired
// or forged tokens are cut off before any session lookup.
func SessionAuthMiddleware(sessions session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Insufficient authorization",
			})
			return
		}

		if config.AppConfig.JWTSecret != "" {
			if _, err := utils.ValidateToken(tokenString); err != nil {
				zap.L().Warn("Rejected invalid auth token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"status":  "error",
					"message": "Invalid or expired token",
				})
				return
			}
		}

		sess, err := sessions.Get(c.Request.Context(), tokenString)
		if err != nil {
			status := http.StatusUnauthorized
			message := "Session not found; please log in again"
			if err != session.ErrSessionNotFound {
				status = http.StatusServiceUnavailable
				message = "Session store unavailable"
				zap.L().Error("Session lookup failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(status, gin.H{"status": "error", "message": message})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Set("userID", sess.UserID)
		c.Next()
	}
}
