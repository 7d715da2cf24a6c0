// Package core provides the core puzzle logic for PipeSlide.
// This package is UI-agnostic and deterministic: it never draws and never
// schedules its own work. A driver calls the command methods once per frame.
package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions, in clockwise order.
type Direction uint8

const (
	DirTop Direction = iota
	DirRight
	DirBottom
	DirLeft
)

// Directions lists all directions in clockwise order starting at Top.
var Directions = [4]Direction{DirTop, DirRight, DirBottom, DirLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name. Up/down are accepted as aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "up":
		return DirTop, nil
	case "right":
		return DirRight, nil
	case "bottom", "down":
		return DirBottom, nil
	case "left":
		return DirLeft, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Clockwise returns the direction 90 degrees clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// Offset returns the tile index delta for one step in this direction
// on a board with the given number of columns.
// Left/Right do not wrap-check: stepping Left from column 0 lands on the
// previous row's last column.
func (d Direction) Offset(cols int) int {
	switch d {
	case DirTop:
		return -cols
	case DirRight:
		return 1
	case DirBottom:
		return cols
	case DirLeft:
		return -1
	default:
		return 0
	}
}

// Vector returns the (dx, dy) unit offset in screen coordinates.
// Top decreases Y.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirBottom:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}
