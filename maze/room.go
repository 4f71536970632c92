package maze

import (
	"fmt"
	"strings"
)

// Render fragments shared by the room variants.
const (
	roomHeaderFmt   = "Room %d:"
	roomSideFmt     = "\n  %s: %s"
	roomContentsFmt = "\n  Contains: %s"
)

// Room is a graph node with a numeric identifier and exactly four
// direction-indexed occupant slots.
//
// Sides start unwired and are assigned during construction via SetSide;
// re-setting a side replaces the prior occupant. The type itself does not
// enforce that all four sides end up wired — that is the construction
// procedure's contract — but Render refuses to produce output for a
// partially wired room (ErrSideUnset) rather than emitting blanks.
type Room struct {
	id    int
	sides [numDirections]Site
}

// NewRoom returns a room with the given id and all four sides unwired.
func NewRoom(id int) *Room { return &Room{id: id} }

// ID returns the room's numeric identifier.
func (r *Room) ID() int { return r.id }

// SetSide wires s into the d slot, replacing any prior occupant.
// Any Site variant is accepted as occupant; the factory, not the room,
// decides what is sensible. Returns ErrBadDirection for out-of-range d
// and ErrNilSite for a nil occupant.
// Complexity: O(1).
func (r *Room) SetSide(d Direction, s Site) error {
	if !d.Valid() {
		return fmt.Errorf("Room.SetSide: room %d: direction %d: %w", r.id, int(d), ErrBadDirection)
	}
	if s == nil {
		return fmt.Errorf("Room.SetSide: room %d: side %s: %w", r.id, d, ErrNilSite)
	}
	r.sides[d-1] = s
	return nil
}

// Side returns the occupant at d, or nil when the slot is unwired or d is
// out of range.
func (r *Room) Side(d Direction) Site {
	if !d.Valid() {
		return nil
	}
	return r.sides[d-1]
}

// Kind returns the variant name "Room".
func (*Room) Kind() string { return "Room" }

// Render returns a header with the room id followed by one line per side
// in canonical order (North, East, South, West), each carrying the
// direction label and the occupant's render text.
//
// Rendering a room with an unwired side fails with ErrSideUnset wrapped
// with the room id and the missing direction.
// Complexity: O(total occupant render cost).
func (r *Room) Render() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, roomHeaderFmt, r.id)
	for _, d := range Directions() {
		s := r.sides[d-1]
		if s == nil {
			return "", fmt.Errorf("Room.Render: room %d: side %s: %w", r.id, d, ErrSideUnset)
		}
		text, err := s.Render()
		if err != nil {
			return "", fmt.Errorf("Room.Render: room %d: side %s: %w", r.id, d, err)
		}
		fmt.Fprintf(&b, roomSideFmt, d, text)
	}
	return b.String(), nil
}

// Spell is the opaque token an enchanted room carries. It has no
// behaviour of its own; only its identity matters. The padding field
// keeps the struct non-zero-sized so distinct mints get distinct
// addresses.
type Spell struct{ _ byte }

// NewSpell mints a fresh spell token.
func NewSpell() *Spell { return &Spell{} }

// EnchantedRoom is a Room that carries a spell and reports it in a
// contents line appended to the base render.
type EnchantedRoom struct {
	Room
	spell *Spell
}

// NewEnchantedRoom returns an enchanted room with the given id and spell.
// A nil spell is permitted and rendered as absent.
func NewEnchantedRoom(id int, spell *Spell) *EnchantedRoom {
	return &EnchantedRoom{Room: Room{id: id}, spell: spell}
}

// Spell returns the room's spell token, which may be nil.
func (r *EnchantedRoom) Spell() *Spell { return r.spell }

// Kind returns the variant name "EnchantedRoom".
func (*EnchantedRoom) Kind() string { return "EnchantedRoom" }

// Render appends a spell contents line to the base room render.
func (r *EnchantedRoom) Render() (string, error) {
	base, err := r.Room.Render()
	if err != nil {
		return "", err
	}
	contents := "no spell"
	if r.spell != nil {
		contents = "a spell"
	}
	return base + fmt.Sprintf(roomContentsFmt, contents), nil
}

// RoomWithABomb is a Room that may hold a bomb and reports the bomb state
// in a contents line appended to the base render.
type RoomWithABomb struct {
	Room
	bomb bool
}

// NewRoomWithABomb returns a room with the given id; bomb selects whether
// a live bomb is present (the bombed kit default is false).
func NewRoomWithABomb(id int, bomb bool) *RoomWithABomb {
	return &RoomWithABomb{Room: Room{id: id}, bomb: bomb}
}

// HasBomb reports whether a live bomb is present.
func (r *RoomWithABomb) HasBomb() bool { return r.bomb }

// Kind returns the variant name "RoomWithABomb".
func (*RoomWithABomb) Kind() string { return "RoomWithABomb" }

// Render appends a bomb contents line to the base room render.
func (r *RoomWithABomb) Render() (string, error) {
	base, err := r.Room.Render()
	if err != nil {
		return "", err
	}
	contents := "no bomb"
	if r.bomb {
		contents = "a live bomb"
	}
	return base + fmt.Sprintf(roomContentsFmt, contents), nil
}
