// SPDX-License-Identifier: MIT
// Package: mazekit/kit
//
// enchanted.go — kit variant swapping the room and door products.

package kit

import "github.com/katalvlaran/mazekit/maze"

// Enchanted produces the enchanted product family: rooms carrying a
// freshly minted spell and doors that need a spell to open. Maze and wall
// production is inherited from Standard unchanged.
type Enchanted struct {
	Standard
}

// MakeRoom returns an enchanted room holding a spell minted for this room
// alone; no two rooms share a spell token.
func (Enchanted) MakeRoom(id int) (maze.RoomSite, error) {
	return maze.NewEnchantedRoom(id, maze.NewSpell()), nil
}

// MakeDoor returns a spell-guarded door joining r1 and r2.
func (Enchanted) MakeDoor(r1, r2 maze.RoomSite) (maze.Site, error) {
	return maze.NewDoorNeedingSpell(r1, r2), nil
}
