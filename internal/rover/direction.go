// Package rover implements the rover state machine: compass headings, the
// bounded obstacle grid it drives on, and the command objects that move it.
package rover

import (
	"fmt"
	"strings"
)

// Direction is a compass heading. The rover always faces exactly one of
// the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the single-letter heading used in reports.
func (d Direction) String() string {
	return [...]string{"N", "E", "S", "W"}[d]
}

// Left returns the heading after a 90 degree counter-clockwise turn.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the heading after a 90 degree clockwise turn.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Move returns the cell one step ahead of (x, y) along d.
// North increases y, East increases x.
func (d Direction) Move(x, y int) (int, int) {
	switch d {
	case North:
		return x, y + 1
	case South:
		return x, y - 1
	case East:
		return x + 1, y
	case West:
		return x - 1, y
	default:
		return x, y
	}
}

// Directions returns all headings in clockwise order starting at North.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection maps a heading letter to a Direction. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	default:
		return North, fmt.Errorf("unknown heading %q", s)
	}
}
