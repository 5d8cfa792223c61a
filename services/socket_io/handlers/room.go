package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/AnhVo11/escapehawkins/services/rooms"
)

// Function to handle room creation. Always succeeds: the coordinator picks a
// fresh code, records the requester as host and subscribes it to the room's
// broadcasts. Only the requester learns the code.
func HandleCreateRoom(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[CREATE] HandleCreateRoom - Socket ID: %s", connID)

		code := coord.CreateRoom(connID)
		client.Emit("roomCreated", gin.H{"roomCode": code})
	}
}

// Function to handle the act of joining a room by code. Failures (unknown
// code, full room, empty name) go back to the requester as a joinError with a
// human-readable message; nobody else in the room hears about them. On
// success the requester gets joinedRoom and the whole room, requester
// included, gets the refreshed player list.
func HandleJoinRoom(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[JOIN] HandleJoinRoom - Socket ID: %s, Args: %v", connID, args)

		data, ok := eventPayload(args)
		if !ok {
			log.Printf("[JOIN-ERROR] Malformed joinRoom payload from %s", connID)
			client.Emit("joinError", "Invalid join request.")
			return
		}

		code, err := coord.JoinRoom(connID, stringField(data, "roomCode"), stringField(data, "name"))
		if err != nil {
			log.Printf("[JOIN-ERROR] %s could not join %q: %v", connID, stringField(data, "roomCode"), err)
			client.Emit("joinError", err.Error())
			return
		}

		client.Emit("joinedRoom", gin.H{"roomCode": code})
	}
}

// Function to handle a voluntary exit from a room. Leaving a room you are not
// in is silently ignored. The room is left registered even when this empties
// it; only the host close path frees a code.
func HandleLeaveRoom(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[LEAVE] HandleLeaveRoom - Socket ID: %s, Args: %v", connID, args)

		data, ok := eventPayload(args)
		if !ok {
			return
		}

		code, left := coord.LeaveRoom(connID, stringField(data, "roomCode"))
		if !left {
			return
		}

		client.Emit("leftRoom", gin.H{"roomCode": code})
	}
}

// Function to handle a host closing its room. Only the creator connection may
// close; anyone else gets a silent no-op. Every subscriber hears roomClosed
// and the code goes back into circulation.
func HandleCloseRoom(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[CLOSE] HandleCloseRoom - Socket ID: %s, Args: %v", connID, args)

		data, ok := eventPayload(args)
		if !ok {
			return
		}

		coord.CloseRoom(connID, stringField(data, "roomCode"))
	}
}
