package rooms

import "errors"

// Errors reported back to the requesting client. The message text is what
// the frontend shows verbatim, so treat it as part of the wire contract.
var (
	ErrRoomNotFound = errors.New("Room not found.")
	ErrRoomFull     = errors.New("This room is full (max 4 players).")
	ErrInvalidName  = errors.New("Name is required.")

	ErrAlreadyLocked  = errors.New("You are locked in and cannot change character.")
	ErrMonsterTooFew  = errors.New("The Demogorgon needs at least 2 players in the room.")
	ErrCharacterTaken = errors.New("That character is already taken.")
	ErrNoCharacter    = errors.New("Pick a character before locking in.")
)
