package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studyblog/logger"
)

const headerRequestID = "X-Request-Id"

// RequestLogging 은 요청별 Request ID를 보장하고, 응답까지 걸린 시간을
// 구조화된 필드로 로깅한다.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestID,
		})
	}
}
