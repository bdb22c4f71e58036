package transport

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lumendao/treasury-backend/internal/auth"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, keeping one supplied by the
// caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Credentials lifts the bearer credential from the Authorization header
// into the request context. Verification happens in the service layer.
func Credentials() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if credential, ok := strings.CutPrefix(header, "Bearer "); ok && credential != "" {
			c.Request = c.Request.WithContext(auth.WithCredential(c.Request.Context(), credential))
		}
		c.Next()
	}
}

// Logging writes one structured line per handled request.
func Logging(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request handled",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Observe records request metrics by method, route template and status.
func Observe(metrics Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.Observe(c.Request.Method, c.FullPath(), c.Writer.Status(), start)
	}
}
