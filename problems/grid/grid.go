// Package grid holds the integer plane geometry shared by the grid problems.
package grid

import "fmt"

// Vec is a position or an offset on the plane. X grows rightwards and Y
// downwards, so a grid is indexed as rows[Y][X].
type Vec struct {
	X, Y int
}

func (v Vec) Add(other Vec) Vec { return Vec{X: v.X + other.X, Y: v.Y + other.Y} }
func (v Vec) Sub(other Vec) Vec { return Vec{X: v.X - other.X, Y: v.Y - other.Y} }

func (v Vec) String() string { return fmt.Sprintf("<%d,%d>", v.X, v.Y) }

// Directions are the four unit moves in the order successors are generated:
// down, right, up, left.
var Directions = []Vec{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Manhattan is the taxicab distance between a and b.
func Manhattan(a, b Vec) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
