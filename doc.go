// Package mazekit is an in-memory construction kit for mazes: families of
// interchangeable map-site components, a fixed assembly procedure that
// wires them into a room graph, and a recursive renderer that never needs
// to know concrete node types.
//
// 🚀 What is mazekit?
//
//	A small, deterministic library that brings together:
//		• Site primitives: rooms, walls, doors, and their specializations
//		• Factory kits: swap a strict subset of the four products per kit
//		• A kit-agnostic builder: one wiring order, any product family
//		• Declarative plans: YAML/TOML recipes executed by the same builder
//
// ✨ Why choose mazekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – all-or-nothing builds, render-time invariants
//   - Deterministic – same kit and plan, render-identical mazes
//   - Extensible – add a kit by embedding Standard and overriding products
//
// Everything is organized under four subpackages:
//
//	maze/    — Site, Direction, Room, Wall, Door, Maze and their variants
//	kit/     — the Factory capability and the Standard/Bombed/Enchanted kits
//	builder/ — Build (fixed two-room procedure) and BuildPlan (recipes)
//	plan/    — declarative maze recipes, decodable from YAML or TOML
//
// Quick ASCII example:
//
//	┌─────────┬─────────┐
//	│ Room 1 door Room 2 │
//	└─────────┴─────────┘
//
//	two rooms sharing one door on room 1's East and room 2's West side.
//
// Dive into the per-package docs for contracts, error policy, and the
// construction invariants each component upholds.
//
//	go get github.com/katalvlaran/mazekit
package mazekit
