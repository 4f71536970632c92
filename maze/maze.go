package maze

import (
	"fmt"
	"strings"
)

// roomSeparator joins room renders in Maze.Render.
const roomSeparator = "\n"

// Maze owns an insertion-ordered collection of rooms.
//
// Duplicate ids are not rejected (mirroring the permissive construction
// contract); Room lookups return the first room registered under an id.
// A Maze is mutated only by AddRoom during construction and should be
// treated as immutable once the build procedure returns it.
type Maze struct {
	rooms []RoomSite
}

// NewMaze returns an empty maze.
func NewMaze() *Maze { return &Maze{} }

// AddRoom appends r to the maze. Returns ErrNilRoom for a nil room.
// Complexity: O(1) amortized.
func (m *Maze) AddRoom(r RoomSite) error {
	if r == nil {
		return fmt.Errorf("Maze.AddRoom: %w", ErrNilRoom)
	}
	m.rooms = append(m.rooms, r)
	return nil
}

// AddChild implements the Container capability: a maze accepts room sites
// as children and rejects every other variant with ErrUnsupportedOp.
func (m *Maze) AddChild(child Site) error {
	if child == nil {
		return fmt.Errorf("Maze.AddChild: %w", ErrNilSite)
	}
	r, ok := child.(RoomSite)
	if !ok {
		return fmt.Errorf("Maze.AddChild: child %s is not a room site: %w", child.Kind(), ErrUnsupportedOp)
	}
	return m.AddRoom(r)
}

// Room returns the first room registered under id, or ErrRoomNotFound.
// Complexity: O(len(rooms)).
func (m *Maze) Room(id int) (RoomSite, error) {
	for _, r := range m.rooms {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("Maze.Room: id %d: %w", id, ErrRoomNotFound)
}

// Rooms returns the rooms in insertion order. The slice is a copy; the
// rooms themselves are shared.
func (m *Maze) Rooms() []RoomSite {
	out := make([]RoomSite, len(m.rooms))
	copy(out, m.rooms)
	return out
}

// Len returns the number of rooms.
func (m *Maze) Len() int { return len(m.rooms) }

// Kind returns the variant name "Maze".
func (*Maze) Kind() string { return "Maze" }

// Render concatenates every room's render in insertion order, one room
// per block separated by a newline. An empty maze renders as the empty
// string. Any room render failure aborts and propagates unchanged.
func (m *Maze) Render() (string, error) {
	parts := make([]string, 0, len(m.rooms))
	for _, r := range m.rooms {
		text, err := r.Render()
		if err != nil {
			return "", fmt.Errorf("Maze.Render: %w", err)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, roomSeparator), nil
}
