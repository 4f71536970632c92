package kit_test

import (
	"testing"

	"github.com/katalvlaran/mazekit/kit"
	"github.com/katalvlaran/mazekit/maze"
	"github.com/stretchr/testify/require"
)

// TestKitProductFamilies verifies which product variant each kit mints
// for each of the four operations — the per-operation substitution that
// the kit abstraction exists to demonstrate.
func TestKitProductFamilies(t *testing.T) {
	cases := []struct {
		name     string
		factory  kit.Factory
		wallKind string
		roomKind string
		doorKind string
	}{
		{"standard", kit.Standard{}, "Wall", "Room", "Door"},
		{"bombed", kit.Bombed{}, "BombedWall", "RoomWithABomb", "Door"},
		{"enchanted", kit.Enchanted{}, "Wall", "EnchantedRoom", "DoorNeedingSpell"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.factory.MakeMaze()
			require.NoError(t, err)
			require.Equal(t, 0, m.Len())

			wall, err := tc.factory.MakeWall()
			require.NoError(t, err)
			require.Equal(t, tc.wallKind, wall.Kind())

			room, err := tc.factory.MakeRoom(1)
			require.NoError(t, err)
			require.Equal(t, tc.roomKind, room.Kind())
			require.Equal(t, 1, room.ID())

			other, err := tc.factory.MakeRoom(2)
			require.NoError(t, err)

			door, err := tc.factory.MakeDoor(room, other)
			require.NoError(t, err)
			require.Equal(t, tc.doorKind, door.Kind())
		})
	}
}

// Products are fresh per call; a kit never hands out the same value twice.
func TestKitProductsAreFresh(t *testing.T) {
	f := kit.Standard{}

	r1, err := f.MakeRoom(1)
	require.NoError(t, err)
	r2, err := f.MakeRoom(1)
	require.NoError(t, err)
	require.NotSame(t, r1.(*maze.Room), r2.(*maze.Room))

	d1, err := f.MakeDoor(r1, r2)
	require.NoError(t, err)
	d2, err := f.MakeDoor(r1, r2)
	require.NoError(t, err)
	require.NotSame(t, d1.(*maze.Door), d2.(*maze.Door))
}

// The bombed kit's defaults: cracked walls, unarmed rooms.
func TestBombedKitDefaults(t *testing.T) {
	f := kit.Bombed{}

	wall, err := f.MakeWall()
	require.NoError(t, err)
	require.False(t, wall.(*maze.BombedWall).Bombed())
	text, err := wall.Render()
	require.NoError(t, err)
	require.Equal(t, "Cracked Wall", text)

	room, err := f.MakeRoom(1)
	require.NoError(t, err)
	require.False(t, room.(*maze.RoomWithABomb).HasBomb())
}

// The enchanted kit mints one fresh spell per room.
func TestEnchantedKitMintsFreshSpells(t *testing.T) {
	f := kit.Enchanted{}

	r1, err := f.MakeRoom(1)
	require.NoError(t, err)
	r2, err := f.MakeRoom(2)
	require.NoError(t, err)

	s1 := r1.(*maze.EnchantedRoom).Spell()
	s2 := r2.(*maze.EnchantedRoom).Spell()
	require.NotNil(t, s1)
	require.NotNil(t, s2)
	require.NotSame(t, s1, s2)
}
