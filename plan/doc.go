// Package plan provides declarative maze recipes: plain-data descriptions
// of the rooms to create and the doors linking them, decodable from YAML
// or TOML documents.
//
// A recipe is construction input, not maze persistence — it describes
// what to build, and any kit can execute it. The canonical two-room
// recipe is available as TwoRooms(); larger layouts are typically loaded
// from files:
//
//	rooms:
//	  - id: 1
//	  - id: 2
//	  - id: 3
//	doors:
//	  - {from: 1, to: 2, from_side: East, to_side: West}
//	  - {from: 2, to: 3, from_side: South, to_side: North}
//
// Validation guarantees a decoded plan builds cleanly: unique positive
// room ids, door endpoints that exist, parsable side labels, and at most
// one door per (room, side) slot. Sides no door claims are filled with
// walls at build time, so every planned room ends fully wired.
package plan
