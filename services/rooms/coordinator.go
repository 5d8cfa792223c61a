package rooms

import (
	"log"
	"strings"
	"sync"

	game_constants "github.com/AnhVo11/escapehawkins/constants/game"
	"github.com/AnhVo11/escapehawkins/models"
)

// Broadcaster is the coordinator's view of the transport layer. Subscribe and
// Unsubscribe manage a connection's membership in a room's broadcast group;
// ToRoom fans an event out to every current member.
type Broadcaster interface {
	Subscribe(connID, roomCode string)
	Unsubscribe(connID, roomCode string)
	ToRoom(roomCode, event string, payload interface{})
}

// RoomUpdate is the payload of every roomUpdate broadcast: the full player
// list in join order.
type RoomUpdate struct {
	RoomCode string          `json:"roomCode"`
	Players  []models.Player `json:"players"`
}

// RoomInfo is the read-only view served over HTTP.
type RoomInfo struct {
	Code        string          `json:"code"`
	Phase       string          `json:"phase"`
	HostID      string          `json:"host_id"`
	PlayerCount int             `json:"player_count"`
	Players     []models.Player `json:"players"`
}

const roomClosedMessage = "Room closed by host."

// Coordinator applies every state transition against the registry. A single
// mutex serializes all of them: each request runs as one indivisible critical
// section, including the broadcast it produces, so subscribers of a room
// observe updates in the order requests were accepted.
type Coordinator struct {
	mu        sync.Mutex
	registry  *Registry
	broadcast Broadcaster
}

func NewCoordinator(b Broadcaster) *Coordinator {
	return &Coordinator{
		registry:  NewRegistry(),
		broadcast: b,
	}
}

// CreateRoom allocates a room owned by the requesting connection and
// subscribes it to the room's broadcast group. Cannot fail.
func (c *Coordinator) CreateRoom(connID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.registry.Create(connID)
	c.broadcast.Subscribe(connID, room.Code)
	log.Printf("[ROOM-CREATE] Room %s created by %s (%d active)", room.Code, connID, c.registry.Size())
	return room.Code
}

// JoinRoom adds the connection to the room as a fresh player. On success the
// whole room (the joiner included) receives the updated player list; the
// returned code is the normalized form the caller should ack with.
func (c *Coordinator) JoinRoom(connID, code, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.registry.Get(code)
	if !ok {
		return "", ErrRoomNotFound
	}
	// A connection holds at most one player per room. A repeated join from
	// the same socket refreshes that player instead of appending a second
	// one, so it never counts against capacity either.
	existing := room.Player(connID)
	if existing == nil && room.IsFull() {
		return "", ErrRoomFull
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	// Oversized names are cut down, not rejected. The form field caps input
	// at 16 anyway, so this only bites hand-crafted clients.
	if runes := []rune(name); len(runes) > game_constants.MaxPlayerNameLength {
		name = string(runes[:game_constants.MaxPlayerNameLength])
	}

	if existing != nil {
		existing.Name = name
	} else {
		room.AddPlayer(&models.Player{ID: connID, Name: name})
	}
	c.broadcast.Subscribe(connID, room.Code)
	c.broadcastUpdate(room)
	log.Printf("[ROOM-JOIN] %s joined room %s as %q (%d/%d)",
		connID, room.Code, name, len(room.Players), game_constants.MaxPlayersPerRoom)
	return room.Code, nil
}

// SelectCharacter sets the player's character. A request against a room the
// connection is not part of (or a room that does not exist) is dropped on the
// floor: no error, no broadcast. Join and create report their failures;
// selection does not, and the frontend relies on that.
func (c *Coordinator) SelectCharacter(connID, code, characterID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.registry.Get(code)
	if !ok {
		return nil
	}
	player := room.Player(connID)
	if player == nil {
		return nil
	}
	if player.Locked {
		return ErrAlreadyLocked
	}
	if characterID == models.MonsterID && len(room.Players) < 2 {
		return ErrMonsterTooFew
	}
	if room.CharacterHeldByOther(characterID, connID) {
		return ErrCharacterTaken
	}

	player.CharacterID = characterID
	c.broadcastUpdate(room)
	log.Printf("[SELECT] %s is now %s in room %s", connID, models.CharacterName(characterID), room.Code)
	return nil
}

// LockCharacter makes the player's current selection final. Locking is
// one-way; a second lock is harmless and still broadcasts.
func (c *Coordinator) LockCharacter(connID, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.registry.Get(code)
	if !ok {
		return nil
	}
	player := room.Player(connID)
	if player == nil {
		return nil
	}
	if player.CharacterID == "" {
		return ErrNoCharacter
	}

	player.Locked = true
	c.broadcastUpdate(room)
	log.Printf("[LOCK] %s locked in %s in room %s", connID, models.CharacterName(player.CharacterID), room.Code)
	return nil
}

// LeaveRoom removes the connection's player from the room voluntarily.
// Reports whether the connection was actually in the room. The room stays
// registered even if this empties it.
func (c *Coordinator) LeaveRoom(connID, code string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.registry.Get(code)
	if !ok {
		return "", false
	}
	if !room.RemovePlayer(connID) {
		return "", false
	}
	c.broadcast.Unsubscribe(connID, room.Code)
	c.broadcastUpdate(room)
	log.Printf("[ROOM-LEAVE] %s left room %s (%d remaining)", connID, room.Code, len(room.Players))
	return room.Code, true
}

// CloseRoom tears a room down on the creator's request. Everyone still
// subscribed hears roomClosed, then the code is freed for reuse. Requests
// from anyone but the creator are ignored.
func (c *Coordinator) CloseRoom(connID, code string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.registry.Get(code)
	if !ok || room.HostID != connID {
		return false
	}

	c.broadcast.ToRoom(room.Code, "roomClosed", roomClosedMessage)
	for _, p := range room.Players {
		c.broadcast.Unsubscribe(p.ID, room.Code)
	}
	c.broadcast.Unsubscribe(room.HostID, room.Code)
	c.registry.Remove(room.Code)
	log.Printf("[ROOM-CLOSE] Room %s closed by host %s (%d active)", room.Code, connID, c.registry.Size())
	return true
}

// Disconnect runs when a connection's transport closes. There is no reverse
// index from socket id to room, so it scans every active room; at lobby scale
// that is a handful of entries. Rooms emptied here are left registered.
func (c *Coordinator) Disconnect(connID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, room := range c.registry.List() {
		if !room.RemovePlayer(connID) {
			continue
		}
		c.broadcast.Unsubscribe(connID, room.Code)
		c.broadcastUpdate(room)
		log.Printf("[DISCONNECT] %s removed from room %s (%d remaining)", connID, room.Code, len(room.Players))
	}
}

// RoomInfo returns a snapshot of one room for the HTTP layer.
func (c *Coordinator) RoomInfo(code string) (RoomInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.registry.Get(code)
	if !ok {
		return RoomInfo{}, false
	}
	return c.roomInfo(room), true
}

// ListRooms returns a snapshot of every active room.
func (c *Coordinator) ListRooms() []RoomInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	rooms := c.registry.List()
	infos := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		infos = append(infos, c.roomInfo(room))
	}
	return infos
}

func (c *Coordinator) roomInfo(room *models.Room) RoomInfo {
	return RoomInfo{
		Code:        room.Code,
		Phase:       room.Phase,
		HostID:      room.HostID,
		PlayerCount: len(room.Players),
		Players:     room.PlayerList(),
	}
}

func (c *Coordinator) broadcastUpdate(room *models.Room) {
	c.broadcast.ToRoom(room.Code, "roomUpdate", RoomUpdate{
		RoomCode: room.Code,
		Players:  room.PlayerList(),
	})
}
