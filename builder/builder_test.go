package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mazekit/builder"
	"github.com/katalvlaran/mazekit/kit"
	"github.com/katalvlaran/mazekit/maze"
	"github.com/stretchr/testify/require"
)

// kits under test; every suite below must hold for each of them.
func allKits() map[string]kit.Factory {
	return map[string]kit.Factory{
		"standard":  kit.Standard{},
		"bombed":    kit.Bombed{},
		"enchanted": kit.Enchanted{},
	}
}

// For any kit, Build returns exactly two rooms with ids 1 and 2.
func TestBuild_TwoRooms(t *testing.T) {
	for name, f := range allKits() {
		t.Run(name, func(t *testing.T) {
			m, err := builder.Build(f)
			require.NoError(t, err)
			require.Equal(t, 2, m.Len())

			r1, err := m.Room(1)
			require.NoError(t, err)
			require.Equal(t, 1, r1.ID())

			r2, err := m.Room(2)
			require.NoError(t, err)
			require.Equal(t, 2, r2.ID())
		})
	}
}

// Room 1's East slot and room 2's West slot hold the same door value, and
// therefore render identically, for every kit.
func TestBuild_SharedDoor(t *testing.T) {
	for name, f := range allKits() {
		t.Run(name, func(t *testing.T) {
			m, err := builder.Build(f)
			require.NoError(t, err)

			r1, err := m.Room(1)
			require.NoError(t, err)
			r2, err := m.Room(2)
			require.NoError(t, err)

			east, west := r1.Side(maze.East), r2.Side(maze.West)
			require.NotNil(t, east)
			require.True(t, east == west, "both slots must hold the same door instance")

			eastText, err := east.Render()
			require.NoError(t, err)
			westText, err := west.Render()
			require.NoError(t, err)
			require.Equal(t, eastText, westText)
		})
	}
}

// The canonical standard-kit maze, side by side, byte for byte.
func TestBuild_StandardScenario(t *testing.T) {
	m, err := builder.Build(kit.Standard{})
	require.NoError(t, err)

	got, err := m.Render()
	require.NoError(t, err)
	require.Equal(t,
		"Room 1:\n"+
			"  North: Wall\n"+
			"  East: Door between rooms 1 and 2\n"+
			"  South: Wall\n"+
			"  West: Wall\n"+
			"Room 2:\n"+
			"  North: Wall\n"+
			"  East: Wall\n"+
			"  South: Wall\n"+
			"  West: Door between rooms 1 and 2",
		got)
}

// Swapping only the wall product changes every wall's text while the door
// text stays byte-identical to the standard kit's output.
func TestBuild_BombedKitSwapsOnlyItsProducts(t *testing.T) {
	std, err := builder.Build(kit.Standard{})
	require.NoError(t, err)
	bombed, err := builder.Build(kit.Bombed{})
	require.NoError(t, err)

	stdRoom, err := std.Room(1)
	require.NoError(t, err)
	bombedRoom, err := bombed.Room(1)
	require.NoError(t, err)

	for _, d := range []maze.Direction{maze.North, maze.South, maze.West} {
		stdWall, errRender := stdRoom.Side(d).Render()
		require.NoError(t, errRender)
		bombedWall, errRender := bombedRoom.Side(d).Render()
		require.NoError(t, errRender)
		require.Equal(t, "Wall", stdWall)
		require.Equal(t, "Cracked Wall", bombedWall)
	}

	stdDoor, err := stdRoom.Side(maze.East).Render()
	require.NoError(t, err)
	bombedDoor, err := bombedRoom.Side(maze.East).Render()
	require.NoError(t, err)
	require.Equal(t, stdDoor, bombedDoor)
}

// Contents lines: enchanted rooms report a spell, bombed rooms report the
// bomb state, standard rooms report neither.
func TestBuild_RoomContentsPerKit(t *testing.T) {
	cases := []struct {
		name    string
		factory kit.Factory
		want    string
	}{
		{"standard", kit.Standard{}, ""},
		{"bombed", kit.Bombed{}, "  Contains: no bomb"},
		{"enchanted", kit.Enchanted{}, "  Contains: a spell"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.Build(tc.factory)
			require.NoError(t, err)

			r, err := m.Room(1)
			require.NoError(t, err)
			text, err := r.Render()
			require.NoError(t, err)

			if tc.want == "" {
				require.NotContains(t, text, "Contains:")
			} else {
				require.Contains(t, text, tc.want)
			}
		})
	}
}

// Rendering the same maze twice without mutation yields identical output.
func TestBuild_RenderIdempotent(t *testing.T) {
	for name, f := range allKits() {
		t.Run(name, func(t *testing.T) {
			m, err := builder.Build(f)
			require.NoError(t, err)

			first, err := m.Render()
			require.NoError(t, err)
			second, err := m.Render()
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}

func TestBuild_NilFactory(t *testing.T) {
	m, err := builder.Build(nil)
	require.Nil(t, m)
	require.ErrorIs(t, err, builder.ErrBuildFailed)
}

// errExhausted is the failure injected by the faulty kit below.
var errExhausted = errors.New("spell pool exhausted")

// faultyKit fails one designated operation and delegates the rest.
type faultyKit struct {
	kit.Standard
	failMaze, failWall, failRoom, failDoor bool
}

func (f faultyKit) MakeMaze() (*maze.Maze, error) {
	if f.failMaze {
		return nil, errExhausted
	}
	return f.Standard.MakeMaze()
}

func (f faultyKit) MakeWall() (maze.Site, error) {
	if f.failWall {
		return nil, errExhausted
	}
	return f.Standard.MakeWall()
}

func (f faultyKit) MakeRoom(id int) (maze.RoomSite, error) {
	if f.failRoom {
		return nil, errExhausted
	}
	return f.Standard.MakeRoom(id)
}

func (f faultyKit) MakeDoor(r1, r2 maze.RoomSite) (maze.Site, error) {
	if f.failDoor {
		return nil, errExhausted
	}
	return f.Standard.MakeDoor(r1, r2)
}

// A failing factory operation aborts construction: no maze is returned,
// whichever of the four operations fails.
func TestBuild_AbortsOnKitFailure(t *testing.T) {
	cases := map[string]faultyKit{
		"make_maze": {failMaze: true},
		"make_wall": {failWall: true},
		"make_room": {failRoom: true},
		"make_door": {failDoor: true},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := builder.Build(f)
			require.Nil(t, m)
			require.ErrorIs(t, err, errExhausted)
		})
	}
}
