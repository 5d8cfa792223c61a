package utils

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs information about each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start time
		startTime := time.Now()

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(startTime)

		log.Printf("[HTTP] %d %s %s (%s)",
			c.Writer.Status(), c.Request.Method, c.Request.URL.Path, latency)
	}
}
