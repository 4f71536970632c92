// SPDX-License-Identifier: MIT
// Package: mazekit/builder
//
// plan.go — plan-driven construction against an arbitrary kit.
//
// Contract:
//   - BuildPlan validates the plan, then executes it in deterministic
//     order: rooms in declaration order, doors in declaration order, and
//     finally a wall fill over rooms × (North, East, South, West).
//   - Both ends of a planned door hold the same door value, exactly as in
//     the fixed two-room procedure.
//   - All-or-nothing, like Build: the first failure discards everything.
//
// Complexity:
//   - O(R + D) factory calls for R rooms and D doors, plus up to 4R wall
//     fills; linear in the plan size.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mazekit/kit"
	"github.com/katalvlaran/mazekit/maze"
	"github.com/katalvlaran/mazekit/plan"
)

// BuildPlan executes the recipe p against f and returns the resulting
// maze. Every side no door claims is filled with a fresh wall, so every
// room in the returned maze is fully wired.
//
// BuildPlan(f, plan.TwoRooms()) renders identically to Build(f).
func BuildPlan(f kit.Factory, p *plan.Plan) (*maze.Maze, error) {
	if f == nil {
		return nil, fmt.Errorf("BuildPlan: nil factory: %w", ErrBuildFailed)
	}
	if p == nil {
		return nil, fmt.Errorf("BuildPlan: nil plan: %w", ErrBuildFailed)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("BuildPlan: %w", err)
	}

	m, err := f.MakeMaze()
	if err != nil {
		return nil, fmt.Errorf("BuildPlan: MakeMaze: %w", err)
	}

	// Create and register rooms in declaration order.
	rooms := make(map[int]maze.RoomSite, len(p.Rooms))
	for _, rp := range p.Rooms {
		room, errRoom := f.MakeRoom(rp.ID)
		if errRoom != nil {
			return nil, fmt.Errorf("BuildPlan: MakeRoom(%d): %w", rp.ID, errRoom)
		}
		if errRoom = m.AddRoom(room); errRoom != nil {
			return nil, fmt.Errorf("BuildPlan: AddRoom(%d): %w", rp.ID, errRoom)
		}
		rooms[rp.ID] = room
	}

	// Wire doors; each link shares one door value between its two slots.
	for _, dp := range p.Doors {
		fromSide, toSide, errSides := dp.Sides()
		if errSides != nil {
			return nil, fmt.Errorf("BuildPlan: %w", errSides)
		}
		from, to := rooms[dp.From], rooms[dp.To]
		door, errDoor := f.MakeDoor(from, to)
		if errDoor != nil {
			return nil, fmt.Errorf("BuildPlan: MakeDoor(%d,%d): %w", dp.From, dp.To, errDoor)
		}
		if errDoor = from.SetSide(fromSide, door); errDoor != nil {
			return nil, fmt.Errorf("BuildPlan: SetSide(%d,%s): %w", dp.From, fromSide, errDoor)
		}
		if errDoor = to.SetSide(toSide, door); errDoor != nil {
			return nil, fmt.Errorf("BuildPlan: SetSide(%d,%s): %w", dp.To, toSide, errDoor)
		}
	}

	// Fill every unclaimed side with a fresh wall, in declaration order
	// per room and canonical direction order per side.
	for _, rp := range p.Rooms {
		room := rooms[rp.ID]
		for _, d := range maze.Directions() {
			if room.Side(d) != nil {
				continue
			}
			if err = wireWall(f, room, d); err != nil {
				return nil, fmt.Errorf("BuildPlan: %w", err)
			}
		}
	}

	return m, nil
}
