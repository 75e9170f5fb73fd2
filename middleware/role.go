package middleware

import (
	"net/http"

	"wednest/models"

	"github.com/gin-gonic/gin"
)

// SessionFromContext returns the session the auth middleware stored, if any.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok
}

// RequireRole gates an endpoint to sessions with the given role
// (models.RoleCouple or models.RoleVendor).
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Insufficient authorization",
			})
			return
		}
		if sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "This action requires a " + role + " account",
			})
			return
		}
		c.Next()
	}
}
