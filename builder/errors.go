// SPDX-License-Identifier: MIT
// Package: mazekit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w, prefixed by the operation
//     that failed ("Build: MakeRoom(1): ...").
//   - The builder never panics at runtime; a nil factory or plan is a
//     programmer error surfaced as ErrBuildFailed.

package builder

import "errors"

// ErrBuildFailed indicates construction could not produce a fully wired
// maze: a nil factory or plan was supplied, or a kit operation failed.
// The partially built state is discarded; Build never returns a partial
// maze alongside an error.
// Usage: if errors.Is(err, ErrBuildFailed) { /* inspect wrapped cause */ }.
var ErrBuildFailed = errors.New("builder: construction failed")
