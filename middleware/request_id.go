package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wednest/utils"
)

// RequestIDMiddleware tags every request with a correlation id and stores a
// child logger carrying it in the Gin context for handlers to pick up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)

		logger := utils.GetLogger().With(zap.String("requestID", requestID))
		c.Set("logger", logger)

		c.Next()
	}
}
