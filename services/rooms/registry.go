package rooms

import (
	"math/rand"
	"strings"

	game_constants "github.com/AnhVo11/escapehawkins/constants/game"
	"github.com/AnhVo11/escapehawkins/models"
)

// Registry owns the code -> room mapping for every active session. It is not
// safe for concurrent use on its own: the Coordinator serializes all access
// behind its lock.
type Registry struct {
	rooms map[string]*models.Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*models.Room)}
}

// NormalizeCode maps any inbound spelling of a room code to its canonical
// uppercase form. Every lookup goes through this.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// generateCode keeps drawing codes until one is free. The alphabet gives
// 32^4 combinations against a handful of live rooms, so in practice the
// first draw wins.
func (r *Registry) generateCode() string {
	for {
		b := make([]byte, game_constants.RoomCodeLength)
		for i := range b {
			b[i] = game_constants.RoomCodeCharset[rand.Intn(len(game_constants.RoomCodeCharset))]
		}
		code := string(b)
		if _, taken := r.rooms[code]; !taken {
			return code
		}
	}
}

// Create allocates a fresh room under a fresh code and stores it.
func (r *Registry) Create(hostID string) *models.Room {
	room := models.NewRoom(r.generateCode(), hostID)
	r.rooms[room.Code] = room
	return room
}

// Get looks up a room by code, normalizing case first.
func (r *Registry) Get(code string) (*models.Room, bool) {
	room, ok := r.rooms[NormalizeCode(code)]
	return room, ok
}

// Remove drops a room from the registry. Only the explicit close path calls
// this; rooms emptied by leavers stay registered.
func (r *Registry) Remove(code string) {
	delete(r.rooms, NormalizeCode(code))
}

// List returns every active room. Order is not significant.
func (r *Registry) List() []*models.Room {
	list := make([]*models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		list = append(list, room)
	}
	return list
}

func (r *Registry) Size() int {
	return len(r.rooms)
}
