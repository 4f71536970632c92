// SPDX-License-Identifier: MIT
// Package: mazekit/builder
//
// build.go — the fixed two-room assembly procedure.
//
// Design contract (strict):
//   - One prescribed call order: MakeMaze, MakeRoom(1), MakeRoom(2),
//     MakeDoor(room1, room2), register rooms, wire sides. No loops over
//     kit products, no branching on the concrete kit.
//   - The entire variability is absorbed by the four factory operations;
//     every kit yields a topologically identical two-room-plus-door maze.
//   - All-or-nothing: the first failing operation aborts the build and the
//     in-progress maze is discarded. Build returns a fully wired maze or
//     no maze at all.
//
// Determinism:
//   - Fixed wiring order: room 1 North, East, South, West, then room 2
//     North, East, South, West. Same kit ⇒ render-identical mazes.
//
// Complexity:
//   - O(1): two rooms, one door, six walls, eight SetSide calls.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mazekit/kit"
	"github.com/katalvlaran/mazekit/maze"
)

// The two fixed room ids of the canonical build.
const (
	firstRoomID  = 1
	secondRoomID = 2
)

// Build runs the fixed construction procedure against f and returns the
// resulting maze: rooms 1 and 2 joined by one shared door on room 1's
// East and room 2's West side, every other side walled.
//
// Build is entirely kit-agnostic. Any factory error aborts construction
// immediately; the error is wrapped with the failing operation and
// ErrBuildFailed is reserved for the nil-factory guard.
func Build(f kit.Factory) (*maze.Maze, error) {
	if f == nil {
		return nil, fmt.Errorf("Build: nil factory: %w", ErrBuildFailed)
	}

	m, err := f.MakeMaze()
	if err != nil {
		return nil, fmt.Errorf("Build: MakeMaze: %w", err)
	}

	room1, err := f.MakeRoom(firstRoomID)
	if err != nil {
		return nil, fmt.Errorf("Build: MakeRoom(%d): %w", firstRoomID, err)
	}
	room2, err := f.MakeRoom(secondRoomID)
	if err != nil {
		return nil, fmt.Errorf("Build: MakeRoom(%d): %w", secondRoomID, err)
	}

	door, err := f.MakeDoor(room1, room2)
	if err != nil {
		return nil, fmt.Errorf("Build: MakeDoor(%d,%d): %w", firstRoomID, secondRoomID, err)
	}

	if err = m.AddRoom(room1); err != nil {
		return nil, fmt.Errorf("Build: AddRoom(%d): %w", firstRoomID, err)
	}
	if err = m.AddRoom(room2); err != nil {
		return nil, fmt.Errorf("Build: AddRoom(%d): %w", secondRoomID, err)
	}

	// Room 1: walls on North, South, West; the shared door on East.
	if err = wireWall(f, room1, maze.North); err != nil {
		return nil, err
	}
	if err = room1.SetSide(maze.East, door); err != nil {
		return nil, fmt.Errorf("Build: SetSide(%d,%s): %w", firstRoomID, maze.East, err)
	}
	if err = wireWall(f, room1, maze.South); err != nil {
		return nil, err
	}
	if err = wireWall(f, room1, maze.West); err != nil {
		return nil, err
	}

	// Room 2: walls on North, East, South; the same door on West.
	if err = wireWall(f, room2, maze.North); err != nil {
		return nil, err
	}
	if err = wireWall(f, room2, maze.East); err != nil {
		return nil, err
	}
	if err = wireWall(f, room2, maze.South); err != nil {
		return nil, err
	}
	if err = room2.SetSide(maze.West, door); err != nil {
		return nil, fmt.Errorf("Build: SetSide(%d,%s): %w", secondRoomID, maze.West, err)
	}

	return m, nil
}

// wireWall manufactures a fresh wall from f and wires it into room at d.
// Each call mints its own wall; walls are never shared between slots.
func wireWall(f kit.Factory, room maze.RoomSite, d maze.Direction) error {
	w, err := f.MakeWall()
	if err != nil {
		return fmt.Errorf("Build: MakeWall: %w", err)
	}
	if err = room.SetSide(d, w); err != nil {
		return fmt.Errorf("Build: SetSide(%d,%s): %w", room.ID(), d, err)
	}
	return nil
}
