package models

import (
	game_constants "github.com/AnhVo11/escapehawkins/constants/game"
)

// Room is one active session. Players are kept in join order, which is also
// the order every roomUpdate lists them in.
type Room struct {
	Code    string
	HostID  string // socket id of the creator, informational only
	Phase   string
	Players []*Player
}

func NewRoom(code, hostID string) *Room {
	return &Room{
		Code:   code,
		HostID: hostID,
		Phase:  game_constants.PhaseLobby,
	}
}

// Player returns the player owned by the given socket id, or nil.
func (r *Room) Player(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) AddPlayer(p *Player) {
	r.Players = append(r.Players, p)
}

// RemovePlayer deletes the player owned by the given socket id, preserving
// the join order of everyone else. Reports whether anything was removed.
func (r *Room) RemovePlayer(id string) bool {
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) IsFull() bool {
	return len(r.Players) >= game_constants.MaxPlayersPerRoom
}

// CharacterHeldByOther reports whether any player other than selfID already
// holds characterID. Re-picking your own character is never a conflict.
func (r *Room) CharacterHeldByOther(characterID, selfID string) bool {
	for _, p := range r.Players {
		if p.ID != selfID && p.CharacterID == characterID {
			return true
		}
	}
	return false
}

// PlayerList returns a by-value copy of the players in join order, safe to
// hand to the transport layer after the room lock is released.
func (r *Room) PlayerList() []Player {
	list := make([]Player, len(r.Players))
	for i, p := range r.Players {
		list[i] = *p
	}
	return list
}
