// SPDX-License-Identifier: MIT
// Package: mazekit/kit
//
// bombed.go — kit variant swapping the wall and room products.

package kit

import "github.com/katalvlaran/mazekit/maze"

// Bombed produces the bombed product family: walls that can be detonated
// and rooms that can hold a bomb. Maze and door production is inherited
// from Standard unchanged.
type Bombed struct {
	Standard
}

// MakeWall returns a bombable wall in its default cracked (not detonated)
// state.
func (Bombed) MakeWall() (maze.Site, error) {
	return maze.NewBombedWall(false), nil
}

// MakeRoom returns a bomb-capable room with no bomb armed.
func (Bombed) MakeRoom(id int) (maze.RoomSite, error) {
	return maze.NewRoomWithABomb(id, false), nil
}
