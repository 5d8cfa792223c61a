package game_constants

// Lobby constraints. The frontend enforces these on its side too, but the
// server is authoritative.
const MaxPlayersPerRoom = 4
const MaxPlayerNameLength = 16
const RoomCodeLength = 4

// Alphabet for room codes. 0/O and 1/I are left out so a code shown on a TV
// screen can be typed on a phone without confusion.
const RoomCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// The only lifecycle phase the coordinator runs today. Later phases belong
// to gameplay, which starts once the lobby locks in.
const PhaseLobby = "lobby"
