package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request including request_id and the search
// keywords, which is what operators grep for.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] request_id=%s method=%s path=%s keywords=%q status=%d bytes=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Query("keywords"),
			c.Writer.Status(),
			c.Writer.Size(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
