package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AnhVo11/escapehawkins/middleware"
	"github.com/AnhVo11/escapehawkins/routes"
	"github.com/AnhVo11/escapehawkins/services/rooms"
	"github.com/AnhVo11/escapehawkins/services/socket_io"
	socketio_types "github.com/AnhVo11/escapehawkins/services/socket_io/types"
)

func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	// All room state lives in memory behind the coordinator; the socket
	// server doubles as its broadcast channel.
	sio := (*socket_io.MySocketServer)(socketio_types.NewSocketServer())
	coord := rooms.NewCoordinator((*socketio_types.SocketServer)(sio))

	routes.SetupRoutes(r, coord)

	sio.Start(r, coord)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("Escape Hawkins server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
