package maze

import (
	"fmt"
	"strings"
)

// doorLabel is the literal rewritten by DoorNeedingSpell.Render.
const (
	doorLabel      = "Door"
	spellDoorLabel = "Door Needing Spell"
)

// Door connects two rooms. Both rooms reference the same Door value in
// their facing side slots; neither owns it exclusively.
//
// Construction performs no validation: the two ends may be identical or
// not yet registered in any Maze. Choosing sensible endpoints is the
// factory's responsibility, not the door's.
type Door struct {
	r1, r2 RoomSite
}

// NewDoor returns a door joining r1 and r2.
func NewDoor(r1, r2 RoomSite) *Door {
	return &Door{r1: r1, r2: r2}
}

// Rooms returns the two connected rooms in construction order.
func (d *Door) Rooms() (RoomSite, RoomSite) { return d.r1, d.r2 }

// OtherSide returns the room opposite from across the door, or nil when
// from is not one of the door's ends.
func (d *Door) OtherSide(from RoomSite) RoomSite {
	switch from {
	case d.r1:
		return d.r2
	case d.r2:
		return d.r1
	default:
		return nil
	}
}

// Kind returns the variant name "Door".
func (*Door) Kind() string { return "Door" }

// Render returns "Door between rooms {id1} and {id2}". A nil end returns
// ErrNilRoom; a well-formed door never fails.
func (d *Door) Render() (string, error) {
	if d.r1 == nil || d.r2 == nil {
		return "", fmt.Errorf("Door.Render: %w", ErrNilRoom)
	}
	return fmt.Sprintf("%s between rooms %d and %d", doorLabel, d.r1.ID(), d.r2.ID()), nil
}

// DoorNeedingSpell is a Door whose render output marks it as requiring a
// spell to open. Wiring behaviour is identical to Door.
type DoorNeedingSpell struct {
	Door
}

// NewDoorNeedingSpell returns a spell-guarded door joining r1 and r2.
func NewDoorNeedingSpell(r1, r2 RoomSite) *DoorNeedingSpell {
	return &DoorNeedingSpell{Door: Door{r1: r1, r2: r2}}
}

// Kind returns the variant name "DoorNeedingSpell".
func (*DoorNeedingSpell) Kind() string { return "DoorNeedingSpell" }

// Render rewrites the first occurrence of the literal "Door" in the base
// door render to "Door Needing Spell".
//
// Known quirk, kept for compatibility: the rewrite targets the first
// occurrence anywhere in the string, so an unrelated leading "Door"
// would be rewritten instead of the label.
func (d *DoorNeedingSpell) Render() (string, error) {
	s, err := d.Door.Render()
	if err != nil {
		return "", err
	}
	return strings.Replace(s, doorLabel, spellDoorLabel, 1), nil
}
