package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer wraps the socket.io server together with a map of live
// connections keyed by socket id. The map is what lets room teardown reach
// sockets other than the requester's.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track socket id -> socket connections
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Connections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(id string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[id] = client
}

func (s *SocketServer) RemoveConnection(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, id)
}

func (s *SocketServer) GetConnection(id string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[id]
	return client, exists
}

// The three methods below satisfy the coordinator's Broadcaster interface,
// so room membership and fan-out stay a transport concern.

func (s *SocketServer) Subscribe(connID, roomCode string) {
	if client, exists := s.GetConnection(connID); exists {
		client.Join(socket.Room(roomCode))
	}
}

func (s *SocketServer) Unsubscribe(connID, roomCode string) {
	if client, exists := s.GetConnection(connID); exists {
		client.Leave(socket.Room(roomCode))
	}
}

func (s *SocketServer) ToRoom(roomCode, event string, payload interface{}) {
	s.Sio_server.To(socket.Room(roomCode)).Emit(event, payload)
}
