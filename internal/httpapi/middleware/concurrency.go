// concurrency.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CapConcurrentRequests limits the number of HTTP requests in flight at
// once; requests beyond maxConcurrent are rejected with 429 instead of
// queueing. The ranking engine itself needs no backpressure (it is
// CPU-bounded by O(log N) work per request), but an HTTP front-end is
// free to impose its own; this uses a buffered-channel semaphore sized
// to maxConcurrent.
func CapConcurrentRequests(maxConcurrent int) gin.HandlerFunc {
	semaphore := make(chan struct{}, maxConcurrent)

	return func(c *gin.Context) {
		select {
		case semaphore <- struct{}{}:
			defer func() { <-semaphore }()
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many concurrent requests"})
		}
	}
}
