package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnhVo11/escapehawkins/controllers"
	"github.com/AnhVo11/escapehawkins/services/rooms"
)

// nopBroadcaster satisfies the coordinator's transport interface for HTTP
// tests, where no socket is listening.
type nopBroadcaster struct{}

func (nopBroadcaster) Subscribe(connID, roomCode string) {}

func (nopBroadcaster) Unsubscribe(connID, roomCode string) {}

func (nopBroadcaster) ToRoom(roomCode, event string, payload interface{}) {}

func setupRouter(coord *rooms.Coordinator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", controllers.Health)
	router.GET("/ping", controllers.Ping)
	router.GET("/characters", controllers.GetCharacters)
	router.GET("/rooms", controllers.GetAllRooms(coord))
	router.GET("/rooms/:code", controllers.GetRoomInfo(coord))
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthBanner(t *testing.T) {
	router := setupRouter(rooms.NewCoordinator(nopBroadcaster{}))

	w := doGet(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Escape Hawkins server is running")
}

func TestPing(t *testing.T) {
	router := setupRouter(rooms.NewCoordinator(nopBroadcaster{}))

	w := doGet(router, "/ping")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pong", response["message"])
}

func TestGetRoomInfo(t *testing.T) {
	coord := rooms.NewCoordinator(nopBroadcaster{})
	code := coord.CreateRoom("host-socket")
	_, err := coord.JoinRoom("p1", code, "Max")
	require.NoError(t, err)

	router := setupRouter(coord)

	// Lookup is case-insensitive like the socket path.
	w := doGet(router, "/rooms/"+strings.ToLower(code))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, code, response["code"])
	assert.Equal(t, "lobby", response["phase"])
	assert.Equal(t, "host-socket", response["host_id"])
	assert.Equal(t, float64(1), response["player_count"])

	players := response["players"].([]interface{})
	require.Len(t, players, 1)
	player := players[0].(map[string]interface{})
	assert.Equal(t, "Max", player["name"])
	assert.Equal(t, "", player["characterId"])
	assert.Equal(t, false, player["locked"])
}

func TestGetRoomInfoNotFound(t *testing.T) {
	router := setupRouter(rooms.NewCoordinator(nopBroadcaster{}))

	w := doGet(router, "/rooms/ZZZZ")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Room not found", response["error"])
}

func TestGetAllRooms(t *testing.T) {
	coord := rooms.NewCoordinator(nopBroadcaster{})
	coord.CreateRoom("a")
	coord.CreateRoom("b")

	router := setupRouter(coord)

	w := doGet(router, "/rooms")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["rooms"], 2)
}

func TestGetCharacters(t *testing.T) {
	router := setupRouter(rooms.NewCoordinator(nopBroadcaster{}))

	w := doGet(router, "/characters")

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Survivors []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"survivors"`
		Monster struct {
			ID string `json:"id"`
		} `json:"monster"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Survivors, 12)
	assert.Equal(t, "demogorgon", response.Monster.ID)
}
