package models

// Player represents one joined connection inside a room. The ID is the
// socket id the transport assigned at connect time; it is opaque to us and
// dies with the connection.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CharacterID string `json:"characterId"` // empty until the player picks someone
	Locked      bool   `json:"locked"`
}
