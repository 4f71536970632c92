// SPDX-License-Identifier: MIT
// Package: mazekit/kit
//
// kit.go — the Factory capability shared by every concrete kit.
//
// Design contract (strict):
//   - Four creation operations, each pure besides allocation: MakeMaze,
//     MakeWall, MakeRoom, MakeDoor.
//   - A concrete kit may override a strict subset of the four; unchanged
//     operations keep the base products. Substitution is per-operation,
//     never per-kit-wholesale.
//   - Kits are stateless values; the same kit may drive any number of
//     builds concurrently.
//   - Operations return errors instead of panicking; any failure ends the
//     build (the builder discards partial state).

package kit

import "github.com/katalvlaran/mazekit/maze"

// Factory manufactures one family of mutually compatible map-site
// products. The builder calls the four operations in a prescribed order
// and never inspects which concrete kit it was given.
type Factory interface {
	// MakeMaze returns a fresh empty maze.
	MakeMaze() (*maze.Maze, error)

	// MakeWall returns a fresh wall variant.
	MakeWall() (maze.Site, error)

	// MakeRoom returns a fresh room variant with the given id.
	MakeRoom(id int) (maze.RoomSite, error)

	// MakeDoor returns a fresh door variant joining two already-built rooms.
	MakeDoor(r1, r2 maze.RoomSite) (maze.Site, error)
}
