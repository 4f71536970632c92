// Package kit provides the factory families that manufacture map-site
// products for the maze builder.
//
// A kit is a Factory: four creation operations (MakeMaze, MakeWall,
// MakeRoom, MakeDoor) whose products are mutually compatible. Concrete
// kits swap the exact variant produced by a strict subset of the
// operations without changing the assembly order:
//
//   - Standard  — base Maze, Wall, Room, Door.
//   - Bombed    — overrides MakeWall (BombedWall, cracked by default) and
//     MakeRoom (RoomWithABomb, unarmed by default).
//   - Enchanted — overrides MakeRoom (EnchantedRoom with a freshly minted
//     Spell per room) and MakeDoor (DoorNeedingSpell).
//
// Every kit is a stateless value; the overridden subset is expressed by
// embedding Standard and shadowing the swapped operations, so the
// remaining products stay byte-identical to the base family.
package kit
