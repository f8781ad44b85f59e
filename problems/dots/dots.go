// Package dots is a maze walk that ends once every dot has been visited.
package dots

import (
	"github.com/pkg/errors"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/problems/grid"
	"github.com/pdrpinto/bestfirst/problems/maze"
)

// MaxDots bounds the number of dots a Board can track.
const MaxDots = 64

// Classic places four dots in maze.Classic, the last on maze.ClassicGoal.
var Classic = []grid.Vec{{X: 1, Y: 2}, {X: 6, Y: 1}, {X: 7, Y: 5}, maze.ClassicGoal}

// State is the walker's position and the set of dots still to visit, one bit
// per dot in Board order.
type State struct {
	Pos       grid.Vec
	Remaining uint64
}

// Board is a maze with dots in it.
type Board struct {
	maze *maze.Maze
	dots []grid.Vec
}

// New checks that every dot sits on an open square.
func New(m *maze.Maze, dots []grid.Vec) (*Board, error) {
	if len(dots) > MaxDots {
		return nil, errors.Errorf("%d dots, at most %d supported", len(dots), MaxDots)
	}
	seen := map[grid.Vec]bool{}
	for _, dot := range dots {
		if !m.Open(dot) {
			return nil, errors.Errorf("dot %v is not on an open square", dot)
		}
		if seen[dot] {
			return nil, errors.Errorf("dot %v listed twice", dot)
		}
		seen[dot] = true
	}
	return &Board{maze: m, dots: append([]grid.Vec(nil), dots...)}, nil
}

// Start places the walker at p, already collecting a dot there.
func (b *Board) Start(p grid.Vec) State {
	all := uint64(0)
	for i := range b.dots {
		all |= 1 << uint(i)
	}
	return b.collect(State{Pos: p, Remaining: all})
}

func (b *Board) collect(s State) State {
	for i, dot := range b.dots {
		if dot == s.Pos {
			s.Remaining &^= 1 << uint(i)
		}
	}
	return s
}

// Left returns the dots still to visit.
func (b *Board) Left(s State) []grid.Vec {
	var left []grid.Vec
	for i, dot := range b.dots {
		if s.Remaining&(1<<uint(i)) != 0 {
			left = append(left, dot)
		}
	}
	return left
}

// Successors is the bestfirst.SuccessorFunc; actions are directions.
func (b *Board) Successors(s State) ([]bestfirst.Successor[State, grid.Vec], error) {
	walks, err := b.maze.Successors(s.Pos)
	if err != nil {
		return nil, err
	}
	successors := make([]bestfirst.Successor[State, grid.Vec], 0, len(walks))
	for _, walk := range walks {
		successors = append(successors, bestfirst.Successor[State, grid.Vec]{
			Action: walk.Action,
			State:  b.collect(State{Pos: walk.State, Remaining: s.Remaining}),
		})
	}
	return successors, nil
}

// IsGoal reports whether every dot has been visited.
func IsGoal(s State) bool { return s.Remaining == 0 }

// Heuristic is the distance to the farthest remaining dot, which the walker
// has to cover at least.
func (b *Board) Heuristic(s State) float64 {
	farthest := 0
	for _, dot := range b.Left(s) {
		if d := grid.Manhattan(s.Pos, dot); d > farthest {
			farthest = d
		}
	}
	return float64(farthest)
}

// remainingDotWeight is the extra cost EagerHeuristic charges per dot left.
const remainingDotWeight = 100

// EagerHeuristic adds a large fixed charge per remaining dot to Heuristic.
// It overestimates, so A* grabs dots greedily and may return a longer walk.
func (b *Board) EagerHeuristic(s State) float64 {
	return b.Heuristic(s) + float64(remainingDotWeight*len(b.Left(s)))
}

// Problem collects every dot starting from start.
func (b *Board) Problem(start grid.Vec) (bestfirst.Problem[State, grid.Vec], error) {
	if !b.maze.Open(start) {
		return bestfirst.Problem[State, grid.Vec]{}, errors.Errorf("start %v is not an open square", start)
	}
	return bestfirst.Problem[State, grid.Vec]{
		Initial:     b.Start(start),
		Successors:  b.Successors,
		Goal:        IsGoal,
		ForwardCost: bestfirst.UnitCost[grid.Vec],
		Heuristic:   b.Heuristic,
	}, nil
}
