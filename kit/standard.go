// SPDX-License-Identifier: MIT
// Package: mazekit/kit
//
// standard.go — the base kit producing the plain product family.

package kit

import "github.com/katalvlaran/mazekit/maze"

// Standard produces the plain product family: base Maze, Wall, Room, and
// Door. It is the default every specialized kit embeds, overriding only
// the operations whose product it swaps.
type Standard struct{}

// MakeMaze returns an empty base maze.
func (Standard) MakeMaze() (*maze.Maze, error) { return maze.NewMaze(), nil }

// MakeWall returns a plain wall.
func (Standard) MakeWall() (maze.Site, error) { return maze.NewWall(), nil }

// MakeRoom returns a base room with the given id.
func (Standard) MakeRoom(id int) (maze.RoomSite, error) { return maze.NewRoom(id), nil }

// MakeDoor returns a plain door joining r1 and r2.
func (Standard) MakeDoor(r1, r2 maze.RoomSite) (maze.Site, error) {
	return maze.NewDoor(r1, r2), nil
}
