// Package maze defines the central Site, Room, Door, Wall, and Maze types,
// and the rendering contract shared by every placeable map component.
//
// This file declares the Site and RoomSite capabilities, the Container
// capability for composite sites, sentinel errors, and the Attach helper.
//
// Errors:
//
//	ErrNilSite       - a nil Site was supplied where an occupant is required.
//	ErrNilRoom       - a nil room was supplied to a door or a maze.
//	ErrBadDirection  - a direction value outside {North,East,South,West}.
//	ErrSideUnset     - a room was rendered with an unwired side.
//	ErrUnsupportedOp - a structural operation a variant does not support.
//	ErrRoomNotFound  - a room id lookup found no match.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrNilSite indicates a nil Site was supplied where an occupant is required.
	ErrNilSite = errors.New("maze: nil site")

	// ErrNilRoom indicates a nil room reference in a door or maze operation.
	ErrNilRoom = errors.New("maze: nil room")

	// ErrBadDirection indicates a direction outside the four cardinal values.
	ErrBadDirection = errors.New("maze: invalid direction")

	// ErrSideUnset indicates a room was rendered before all four sides were wired.
	ErrSideUnset = errors.New("maze: room side not wired")

	// ErrUnsupportedOp indicates a structural operation was attempted on a
	// variant that does not support it (e.g. attaching a child to a Wall).
	ErrUnsupportedOp = errors.New("maze: operation not supported by variant")

	// ErrRoomNotFound indicates a maze lookup referenced a non-existent room id.
	ErrRoomNotFound = errors.New("maze: room not found")
)

// Site is the capability every placeable map component provides.
//
// Render must be deterministic and free of side effects: the same occupant
// state always yields the same string. The only defined failure is a room
// rendered with an unwired side (ErrSideUnset), which surfaces the
// build-order invariant instead of producing blank output.
//
// Kind returns the variant name ("Wall", "Door", "Room", ...) used in
// structural error messages; it never fails.
type Site interface {
	Render() (string, error)
	Kind() string
}

// RoomSite is the capability of every room variant: a Site with a numeric
// identity and four direction-indexed occupant slots. Factories return
// RoomSite so specialized rooms wire exactly like base ones.
type RoomSite interface {
	Site

	// ID returns the room's numeric identifier.
	ID() int

	// SetSide wires an occupant into the given direction slot.
	// Re-setting a side replaces the prior occupant (last write wins).
	SetSide(d Direction, s Site) error

	// Side returns the occupant at d, or nil if the slot is unwired
	// or d is out of range.
	Side(d Direction) Site
}

// Container is the optional capability of sites that can hold child sites.
// Variants that do not implement it are primitive; Attach rejects them.
type Container interface {
	// AddChild appends a child site. Implementations reject child kinds
	// they cannot hold with ErrUnsupportedOp.
	AddChild(child Site) error
}

// Attach adds child under parent when parent is a composite site.
//
// Primitive variants (Wall, Door, Room and their specializations) do not
// implement Container; attaching to them fails with ErrUnsupportedOp naming
// the variant and the attempted operation — never a silent no-op.
// Complexity: O(1) plus the parent's AddChild cost.
func Attach(parent, child Site) error {
	if parent == nil || child == nil {
		return fmt.Errorf("Attach: %w", ErrNilSite)
	}
	c, ok := parent.(Container)
	if !ok {
		return fmt.Errorf("Attach: %s does not support AddChild: %w", parent.Kind(), ErrUnsupportedOp)
	}
	return c.AddChild(child)
}
