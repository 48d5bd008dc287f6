package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequestObserver records one finished HTTP request
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int)
}

// Metrics middleware reports every request by its route template so
// account numbers in paths do not explode label cardinality
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		observer.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
