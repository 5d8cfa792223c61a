package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnhVo11/escapehawkins/models"
	"github.com/AnhVo11/escapehawkins/services/rooms"
)

// GetAllRooms lists every active room with its current occupancy. Read-only:
// all mutation goes through the socket layer.
func GetAllRooms(coord *rooms.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": coord.ListRooms()})
	}
}

// GetRoomInfo returns one room looked up by code. Codes are case-normalized
// the same way the socket layer normalizes them.
func GetRoomInfo(coord *rooms.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		info, ok := coord.RoomInfo(code)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}

		c.JSON(http.StatusOK, info)
	}
}

// GetCharacters serves the selectable catalog so clients do not have to
// hardcode it.
func GetCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"survivors": models.Survivors,
		"monster":   models.Monster,
	})
}
