package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/AnhVo11/escapehawkins/services/rooms"
	socketio_types "github.com/AnhVo11/escapehawkins/services/socket_io/types"
)

// Function to handle socket.io client disconnections. Runs while the socket
// is still in its rooms, so the remaining players' roomUpdate goes out before
// the transport finishes tearing the connection down.
func HandleDisconnecting(coord *rooms.Coordinator, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[DISCONNECT] HandleDisconnecting - Socket ID: %s", connID)

		coord.Disconnect(connID)

		// Finally remove connection from map
		sio.RemoveConnection(connID)
		log.Printf("[DISCONNECT-DONE] Socket disconnected: %s", connID)
	}
}
