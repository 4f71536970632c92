package maze

import (
	"fmt"
	"strings"
)

// Direction identifies one of the four sides of a Room.
//
// The set is closed and the enumeration order (North, East, South, West)
// is the canonical iteration order used by Room.Render and every
// deterministic wiring pass. Values start at 1 so that the zero value is
// never a valid direction.
type Direction int

// The four cardinal directions, in canonical order.
const (
	North Direction = iota + 1
	East
	South
	West
)

// numDirections is the cardinality of the Direction set; sides arrays are
// indexed by Direction-1.
const numDirections = 4

// Directions returns the four directions in canonical order.
// Callers may reorder the returned slice; a fresh slice is allocated per call.
// Complexity: O(1).
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// String returns the fixed display label of d ("North", "East", "South",
// "West"), or "Unknown" for any out-of-range value.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction facing d (North↔South, East↔West).
// Out-of-range values are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection resolves a case-insensitive direction label to its
// Direction value. Unknown labels return ErrBadDirection wrapped with the
// offending input.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return North, nil
	case "east":
		return East, nil
	case "south":
		return South, nil
	case "west":
		return West, nil
	default:
		return 0, fmt.Errorf("ParseDirection: %q: %w", s, ErrBadDirection)
	}
}
