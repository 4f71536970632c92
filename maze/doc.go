// Package maze provides the map-site type family at the heart of the
// construction kit: rooms, walls, doors, and the container that owns them.
//
// The component model, leaf first:
//
//   - Direction — the closed set {North, East, South, West} with a fixed
//     display label and a canonical iteration order.
//   - Site — the capability every placeable component provides:
//     Render() (string, error) and Kind() string. Render is deterministic
//     and side-effect free.
//   - Wall / BombedWall — stateless and near-stateless boundaries.
//   - Door / DoorNeedingSpell — a shared connector between two rooms; both
//     rooms hold the same Door value in their facing slots.
//   - Room / EnchantedRoom / RoomWithABomb — graph nodes with a numeric id
//     and four direction-indexed occupant slots; the specializations append
//     a contents line to the base render.
//   - Maze — the insertion-ordered room collection.
//
// Construction discipline:
//
// A room's sides are wired exactly once by the builder; re-setting a side
// before construction completes simply replaces the occupant. The type
// system deliberately does not force all four sides to be wired — instead,
// Render on a partially wired room fails with ErrSideUnset naming the room
// and the missing direction, so a broken build order is observable rather
// than silently blank.
//
// Concurrency:
//
// Nothing here locks. Construction is a short, synchronous, allocation-only
// pass; after the builder returns, the whole graph is immutable by
// convention and may be shared across goroutines without synchronization.
package maze
