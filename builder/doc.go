// Package builder provides the fixed assembly procedures that turn a
// factory kit into a wired maze.
//
// The package offers two entry points:
//
//   - Build(f):          the canonical two-room procedure — rooms 1 and 2,
//     one shared door (room 1 East / room 2 West), walls everywhere else.
//   - BuildPlan(f, p):   the same wiring discipline driven by a
//     declarative plan instead of the fixed sequence.
//
// Guarantees:
//
//   - Kit-agnostic: the procedure never branches on the concrete factory;
//     every kit yields a topologically identical maze, differing only in
//     the variant of each wired product.
//   - Deterministic: fixed call and wiring order; the same kit and plan
//     always produce render-identical mazes.
//   - All-or-nothing: any factory failure aborts construction and the
//     partially built maze is discarded — a returned maze is always fully
//     wired and safe to render.
//
// The returned maze should be treated as immutable; nothing in this
// module mutates it after construction, so sharing it across goroutines
// requires no synchronization.
package builder
