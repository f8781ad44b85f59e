// Package sliding is the 3×3 sliding-tile puzzle. Tile 0 is the blank; an
// action names the square the blank moves to.
package sliding

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/problems/grid"
)

// Size is the side of the board.
const Size = 3

// Board is indexed as board[y][x].
type Board [Size][Size]int

// Goal has the blank in the top-left corner and tiles in reading order.
var Goal = Board{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
}

// At returns the tile at p.
func (b Board) At(p grid.Vec) int { return b[p.Y][p.X] }

// Valid reports whether b holds each tile exactly once.
func (b Board) Valid() bool {
	var seen [Size * Size]bool
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			tile := b[y][x]
			if tile < 0 || tile >= Size*Size || seen[tile] {
				return false
			}
			seen[tile] = true
		}
	}
	return true
}

// Blank returns the position of tile 0.
func (b Board) Blank() grid.Vec {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				return grid.Vec{X: x, Y: y}
			}
		}
	}
	panic("sliding: board has no blank")
}

func inBounds(p grid.Vec) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Moves lists the squares the blank can move to.
func (b Board) Moves() []grid.Vec {
	blank := b.Blank()
	moves := make([]grid.Vec, 0, len(grid.Directions))
	for _, direction := range grid.Directions {
		if target := blank.Add(direction); inBounds(target) {
			moves = append(moves, target)
		}
	}
	return moves
}

// Slide swaps the blank with the tile at target, which must be adjacent.
func (b Board) Slide(target grid.Vec) (Board, error) {
	blank := b.Blank()
	if !inBounds(target) || grid.Manhattan(target, blank) != 1 {
		return b, errors.Wrapf(bestfirst.ErrInvalidSuccessor, "blank at %v cannot move to %v", blank, target)
	}
	b[blank.Y][blank.X], b[target.Y][target.X] = b[target.Y][target.X], b[blank.Y][blank.X]
	return b, nil
}

// Successors is the puzzle's bestfirst.SuccessorFunc.
func Successors(b Board) ([]bestfirst.Successor[Board, grid.Vec], error) {
	moves := b.Moves()
	successors := make([]bestfirst.Successor[Board, grid.Vec], 0, len(moves))
	for _, target := range moves {
		next, err := b.Slide(target)
		if err != nil {
			return nil, err
		}
		successors = append(successors, bestfirst.Successor[Board, grid.Vec]{Action: target, State: next})
	}
	return successors, nil
}

// IsGoal reports whether b is solved.
func IsGoal(b Board) bool { return b == Goal }

// home is where tile belongs in Goal.
func home(tile int) grid.Vec { return grid.Vec{X: tile % Size, Y: tile / Size} }

// ManhattanHeuristic sums each numbered tile's distance from home. It never
// overestimates.
func ManhattanHeuristic(b Board) float64 {
	sum := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if tile := b[y][x]; tile != 0 {
				sum += grid.Manhattan(home(tile), grid.Vec{X: x, Y: y})
			}
		}
	}
	return float64(sum)
}

// EagerHeuristic adds the number of misplaced squares, blank included, to the
// Manhattan sum over every square. It overestimates, trading optimality for
// fewer expansions.
func EagerHeuristic(b Board) float64 {
	sum, misplaced := 0, 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if d := grid.Manhattan(home(b[y][x]), grid.Vec{X: x, Y: y}); d > 0 {
				sum += d
				misplaced++
			}
		}
	}
	return float64(sum + misplaced)
}

// Problem solves start with unit moves and the Manhattan heuristic.
func Problem(start Board) (bestfirst.Problem[Board, grid.Vec], error) {
	if !start.Valid() {
		return bestfirst.Problem[Board, grid.Vec]{}, errors.Errorf("board %v is not a permutation of 0..%d", start, Size*Size-1)
	}
	return bestfirst.Problem[Board, grid.Vec]{
		Initial:     start,
		Successors:  Successors,
		Goal:        IsGoal,
		ForwardCost: bestfirst.UnitCost[grid.Vec],
		Heuristic:   ManhattanHeuristic,
	}, nil
}

// Scramble walks the blank randomly for moves legal slides away from Goal, so
// the result is always solvable in at most moves slides.
func Scramble(rng *rand.Rand, moves int) Board {
	b := Goal
	for i := 0; i < moves; i++ {
		options := b.Moves()
		next, err := b.Slide(options[rng.Intn(len(options))])
		if err != nil {
			panic(err)
		}
		b = next
	}
	return b
}

// Replay applies path to start.
func Replay(start Board, path []grid.Vec) (Board, error) {
	b := start
	for _, target := range path {
		next, err := b.Slide(target)
		if err != nil {
			return b, err
		}
		b = next
	}
	return b, nil
}
