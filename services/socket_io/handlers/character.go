package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/AnhVo11/escapehawkins/services/rooms"
)

// Function to handle a character pick. Reported failures (locked, monster
// with too few players, character taken) reach only the requester via
// characterError; a pick against a room the requester is not part of is
// dropped without a reply.
func HandleSelectCharacter(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[SELECT] HandleSelectCharacter - Socket ID: %s, Args: %v", connID, args)

		data, ok := eventPayload(args)
		if !ok {
			return
		}

		err := coord.SelectCharacter(connID, stringField(data, "roomCode"), stringField(data, "characterId"))
		if err != nil {
			log.Printf("[SELECT-ERROR] %s in room %q: %v", connID, stringField(data, "roomCode"), err)
			client.Emit("characterError", err.Error())
		}
	}
}

// Function to handle locking a character in. Locking with no character
// selected is the one reported failure; locking twice is harmless and still
// refreshes the room.
func HandleLockCharacter(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[LOCK] HandleLockCharacter - Socket ID: %s, Args: %v", connID, args)

		data, ok := eventPayload(args)
		if !ok {
			return
		}

		err := coord.LockCharacter(connID, stringField(data, "roomCode"))
		if err != nil {
			log.Printf("[LOCK-ERROR] %s in room %q: %v", connID, stringField(data, "roomCode"), err)
			client.Emit("characterError", err.Error())
		}
	}
}
