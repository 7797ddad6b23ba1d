package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ZapLogger logs one structured line per completed request: method,
// route, status, request id, client IP, and latency, at a severity
// derived from the response status.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logRequest(log, c, time.Since(start))
	}
}

func logRequest(log *zap.Logger, c *gin.Context, latency time.Duration) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("route", route),
		zap.Int("status", c.Writer.Status()),
		zap.String("request_id", GetRequestID(c)),
		zap.String("client_ip", c.ClientIP()),
		zap.Duration("latency", latency),
	}
	if err := requestErrors(c); err != nil {
		fields = append(fields, zap.Error(err))
	}

	severity(log, c.Writer.Status())("request", fields...)
}

// requestErrors joins every error gin accumulated while handling the
// request, or returns nil if there were none.
func requestErrors(c *gin.Context) error {
	var errs []error
	for _, ge := range c.Errors {
		if ge.Err != nil {
			errs = append(errs, ge.Err)
		}
	}
	return errors.Join(errs...)
}

// severity picks the logging method matching an HTTP status: 5xx logs
// at Error, 4xx at Warn, anything else at Info.
func severity(log *zap.Logger, status int) func(string, ...zap.Field) {
	switch {
	case status >= 500:
		return log.Error
	case status >= 400:
		return log.Warn
	default:
		return log.Info
	}
}
