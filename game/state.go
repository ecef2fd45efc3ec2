// Package game defines the value types shared between the rules core and any
// driver: board coordinates, sides, directions, and the cell encoding constants.
//
// These types are deliberately plain so a search driver can copy and compare
// them cheaply.
package game

import "fmt"

const (
	// Food is the sentinel value reported for the food cell.
	Food int32 = 99
	// HealthMax is the starting health, restored in full when food is eaten.
	HealthMax int32 = 15
)

// Point is a board coordinate. (0,0) is the top-left corner; x grows east and
// y grows south.
type Point struct {
	X int32
	Y int32
}

// Step returns the point one cell away in the given direction.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Side identifies one of the two competitors. The numeric values double as the
// sign of that side's cells in the derived grid encoding.
type Side int8

const (
	White Side = 1
	Black Side = -1
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return -s
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("side(%d)", int8(s))
}

// Direction is one of the four unit steps a snake can take.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

// Directions lists all four directions in their canonical enumeration order.
var Directions = [4]Direction{East, North, West, South}

// Offset returns the (dx, dy) unit vector for the direction.
func (d Direction) Offset() (int32, int32) {
	switch d {
	case East:
		return 1, 0
	case North:
		return 0, -1
	case West:
		return -1, 0
	case South:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}
