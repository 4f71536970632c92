// SPDX-License-Identifier: MIT
// Package: mazekit/plan
//
// plan.go — declarative maze recipes and their validation.
//
// Design contract (strict):
//   - A Plan is plain data: room ids plus door links between named sides.
//     It carries no behaviour beyond Validate.
//   - Validation is exhaustive and ordered: room checks first (missing,
//     bad id, duplicate), then door checks (unknown endpoint, bad side
//     label, slot claimed twice).
//   - Only sentinel errors are returned; callers branch with errors.Is.
//   - A validated plan is deterministic input: executing it twice against
//     the same kit yields render-identical mazes.

package plan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazekit/maze"
)

// Sentinel errors for plan decoding and validation.
var (
	// ErrUnknownFormat indicates a recipe file extension with no decoder.
	ErrUnknownFormat = errors.New("plan: unknown recipe format")

	// ErrEmptyPlan indicates a recipe with no rooms.
	ErrEmptyPlan = errors.New("plan: no rooms")

	// ErrBadRoomID indicates a room id below 1 (usually a missing field).
	ErrBadRoomID = errors.New("plan: invalid room id")

	// ErrDuplicateRoom indicates two planned rooms sharing an id.
	ErrDuplicateRoom = errors.New("plan: duplicate room id")

	// ErrUnknownRoom indicates a door endpoint with no planned room.
	ErrUnknownRoom = errors.New("plan: door references unknown room")

	// ErrBadSide indicates a side label that is not a cardinal direction.
	ErrBadSide = errors.New("plan: invalid side label")

	// ErrSideTaken indicates two doors claiming the same (room, side) slot.
	ErrSideTaken = errors.New("plan: room side already claimed")
)

// RoomPlan names one room to create. IDs must be ≥ 1 and unique within
// the plan (a duplicate in a recipe is always a mistake, even though the
// Maze container itself does not reject duplicates).
type RoomPlan struct {
	ID int `yaml:"id" toml:"id"`
}

// DoorPlan links two planned rooms through one door. The door occupies
// FromSide on the From room and ToSide on the To room; both slots hold
// the same door value.
type DoorPlan struct {
	From     int    `yaml:"from" toml:"from"`
	To       int    `yaml:"to" toml:"to"`
	FromSide string `yaml:"from_side" toml:"from_side"`
	ToSide   string `yaml:"to_side" toml:"to_side"`
}

// Plan is a declarative maze recipe: the rooms to create and the doors
// linking them. Sides not claimed by any door are filled with walls by
// the build procedure, so a valid plan always yields fully wired rooms.
type Plan struct {
	Rooms []RoomPlan `yaml:"rooms" toml:"rooms"`
	Doors []DoorPlan `yaml:"doors" toml:"doors"`
}

// TwoRooms returns the canonical recipe: rooms 1 and 2 joined by a single
// door on room 1's East and room 2's West side. Executing it reproduces
// the fixed two-room build exactly.
func TwoRooms() *Plan {
	return &Plan{
		Rooms: []RoomPlan{{ID: 1}, {ID: 2}},
		Doors: []DoorPlan{{From: 1, To: 2, FromSide: maze.East.String(), ToSide: maze.West.String()}},
	}
}

// sideSlot identifies one (room, direction) wiring slot during validation.
type sideSlot struct {
	room int
	side maze.Direction
}

// Validate checks the plan for structural mistakes: it must name at least
// one room, ids must be ≥ 1 and unique, every door endpoint must be a
// planned room, side labels must parse, and no two doors may claim the
// same (room, side) slot.
//
// Validate reports the first failure in deterministic order (rooms in
// declaration order, then doors in declaration order).
// Complexity: O(len(Rooms) + len(Doors)).
func (p *Plan) Validate() error {
	if len(p.Rooms) == 0 {
		return fmt.Errorf("Plan.Validate: %w", ErrEmptyPlan)
	}

	ids := make(map[int]struct{}, len(p.Rooms))
	for i, r := range p.Rooms {
		if r.ID < 1 {
			return fmt.Errorf("Plan.Validate: rooms[%d]: id %d: %w", i, r.ID, ErrBadRoomID)
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("Plan.Validate: rooms[%d]: id %d: %w", i, r.ID, ErrDuplicateRoom)
		}
		ids[r.ID] = struct{}{}
	}

	taken := make(map[sideSlot]struct{}, 2*len(p.Doors))
	for i, d := range p.Doors {
		for _, end := range []int{d.From, d.To} {
			if _, ok := ids[end]; !ok {
				return fmt.Errorf("Plan.Validate: doors[%d]: room %d: %w", i, end, ErrUnknownRoom)
			}
		}
		fromSide, err := maze.ParseDirection(d.FromSide)
		if err != nil {
			return fmt.Errorf("Plan.Validate: doors[%d]: from_side %q: %w", i, d.FromSide, ErrBadSide)
		}
		toSide, err := maze.ParseDirection(d.ToSide)
		if err != nil {
			return fmt.Errorf("Plan.Validate: doors[%d]: to_side %q: %w", i, d.ToSide, ErrBadSide)
		}
		for _, slot := range []sideSlot{{d.From, fromSide}, {d.To, toSide}} {
			if _, claimed := taken[slot]; claimed {
				return fmt.Errorf("Plan.Validate: doors[%d]: room %d side %s: %w", i, slot.room, slot.side, ErrSideTaken)
			}
			taken[slot] = struct{}{}
		}
	}

	return nil
}

// Sides returns the parsed direction pair of a door link. It assumes the
// plan has passed Validate; unparsable labels still return ErrBadSide so
// an unvalidated plan cannot wire garbage.
func (d DoorPlan) Sides() (from, to maze.Direction, err error) {
	from, err = maze.ParseDirection(d.FromSide)
	if err != nil {
		return 0, 0, fmt.Errorf("DoorPlan.Sides: from_side %q: %w", d.FromSide, ErrBadSide)
	}
	to, err = maze.ParseDirection(d.ToSide)
	if err != nil {
		return 0, 0, fmt.Errorf("DoorPlan.Sides: to_side %q: %w", d.ToSide, ErrBadSide)
	}
	return from, to, nil
}
