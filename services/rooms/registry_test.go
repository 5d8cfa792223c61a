package rooms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	game_constants "github.com/AnhVo11/escapehawkins/constants/game"
)

func TestCreateGeneratesUniqueCodes(t *testing.T) {
	reg := NewRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		room := reg.Create("host")
		assert.False(t, seen[room.Code], "code %s handed out twice", room.Code)
		seen[room.Code] = true
	}
	assert.Equal(t, 200, reg.Size())
}

func TestCodesUseTheUnambiguousAlphabet(t *testing.T) {
	reg := NewRegistry()

	for i := 0; i < 50; i++ {
		room := reg.Create("host")
		require.Len(t, room.Code, game_constants.RoomCodeLength)
		for _, c := range room.Code {
			assert.Contains(t, game_constants.RoomCodeCharset, string(c))
		}
		// The confusable characters must never show up.
		assert.NotContains(t, room.Code, "0")
		assert.NotContains(t, room.Code, "O")
		assert.NotContains(t, room.Code, "1")
		assert.NotContains(t, room.Code, "I")
	}
}

func TestGetNormalizesCase(t *testing.T) {
	reg := NewRegistry()
	room := reg.Create("host")

	found, ok := reg.Get(strings.ToLower(room.Code))
	require.True(t, ok)
	assert.Same(t, room, found)

	found, ok = reg.Get("  " + room.Code + "  ")
	require.True(t, ok)
	assert.Same(t, room, found)

	_, ok = reg.Get("ZZZZ")
	assert.False(t, ok)
}

func TestRemoveFreesTheCode(t *testing.T) {
	reg := NewRegistry()
	room := reg.Create("host")

	reg.Remove(strings.ToLower(room.Code))

	_, ok := reg.Get(room.Code)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Size())
}

func TestListReturnsEveryActiveRoom(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create("host-a")
	b := reg.Create("host-b")

	list := reg.List()
	require.Len(t, list, 2)
	codes := []string{list[0].Code, list[1].Code}
	assert.Contains(t, codes, a.Code)
	assert.Contains(t, codes, b.Code)
}
