package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AnhVo11/escapehawkins/controllers"
	"github.com/AnhVo11/escapehawkins/services/rooms"
	utils "github.com/AnhVo11/escapehawkins/utils"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, coord *rooms.Coordinator) {
	router.Use(utils.Logger())

	api := router.Group("/")

	api.GET("/", controllers.Health)

	api.GET("/ping", controllers.Ping)

	api.GET("/characters", controllers.GetCharacters)

	// Read-only lobby inspection; all mutation happens over the socket
	roomRoutes := api.Group("/rooms")
	{
		roomRoutes.GET("", controllers.GetAllRooms(coord))

		roomRoutes.GET("/:code", controllers.GetRoomInfo(coord))
	}
}
