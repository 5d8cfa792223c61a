package socket_io

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/AnhVo11/escapehawkins/services/rooms"
	"github.com/AnhVo11/escapehawkins/services/socket_io/handlers"
	socketio_types "github.com/AnhVo11/escapehawkins/services/socket_io/types"
)

type MySocketServer socketio_types.SocketServer

// Start configures the socket.io server, registers the lobby event handlers
// for every incoming connection and mounts the engine.io endpoint on the gin
// router. A connection's identity is its socket id, assigned by the transport
// at connect time and dead once it disconnects.
func (sio *MySocketServer) Start(router *gin.Engine, coord *rooms.Coordinator) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		connID := string(client.Id())

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(connID, client)

		log.Printf("[CONNECT] Client connected: %s (%d online)", connID, len(sio.Connections))

		// Open a new room and become its host
		client.On("createRoom", handlers.HandleCreateRoom(coord, client))

		// Join an existing room by its 4-character code
		client.On("joinRoom", handlers.HandleJoinRoom(coord, client))

		// Pick a character from the shared pool
		client.On("selectCharacter", handlers.HandleSelectCharacter(coord, client))

		// Make the current pick final
		client.On("lockCharacter", handlers.HandleLockCharacter(coord, client))

		// Exit a room voluntarily
		client.On("leaveRoom", handlers.HandleLeaveRoom(coord, client))

		// Close a room (hosts only)
		client.On("closeRoom", handlers.HandleCloseRoom(coord, client))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(coord, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
