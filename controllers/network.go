package controllers

import (
	"github.com/gin-gonic/gin"
)

// Health is the root banner route the original deployment exposes for
// uptime checks.
func Health(c *gin.Context) {
	c.String(200, "Escape Hawkins server is running 👾")
}

// Ping responds to a basic liveness probe.
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
