// Package maze is a walled grid walked one square at a time.
package maze

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/problems/grid"
)

const (
	wall = '#'
	open = ' '
)

// Classic is the reference maze. Reaching ClassicGoal from ClassicStart
// takes nine moves.
var Classic = []string{
	"###########",
	"# #       #",
	"#   #######",
	"##       ##",
	"# # ####  #",
	"#     #  ##",
	"###########",
}

var (
	ClassicStart = grid.Vec{X: 1, Y: 1}
	ClassicGoal  = grid.Vec{X: 1, Y: 4}
)

// Maze is an immutable rectangular grid of walls and open squares.
type Maze struct {
	rows   []string
	width  int
	height int
}

// Parse validates rows: non-empty, rectangular, made of walls and spaces only.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, errors.New("maze has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, errors.New("maze has an empty first row")
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("row %d is %d wide, expected %d", y, len(row), width)
		}
		if i := strings.IndexFunc(row, func(r rune) bool { return r != wall && r != open }); i >= 0 {
			return nil, errors.Errorf("row %d has unexpected %q at column %d", y, row[i], i)
		}
	}
	return &Maze{rows: append([]string(nil), rows...), width: width, height: len(rows)}, nil
}

// MustParse is Parse for mazes known to be valid.
func MustParse(rows []string) *Maze {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Maze) Width() int  { return m.width }
func (m *Maze) Height() int { return m.height }

// Open reports whether p is inside the maze and not a wall.
func (m *Maze) Open(p grid.Vec) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height && m.rows[p.Y][p.X] == open
}

// Moves lists the directions leading from p to an open square.
func (m *Maze) Moves(p grid.Vec) []grid.Vec {
	moves := make([]grid.Vec, 0, len(grid.Directions))
	for _, direction := range grid.Directions {
		if m.Open(p.Add(direction)) {
			moves = append(moves, direction)
		}
	}
	return moves
}

// Step moves from p in direction, failing on walls and non-unit moves.
func (m *Maze) Step(p, direction grid.Vec) (grid.Vec, error) {
	if grid.Manhattan(grid.Vec{}, direction) != 1 {
		return p, errors.Wrapf(bestfirst.ErrInvalidSuccessor, "%v is not a unit move", direction)
	}
	next := p.Add(direction)
	if !m.Open(next) {
		return p, errors.Wrapf(bestfirst.ErrInvalidSuccessor, "%v is blocked", next)
	}
	return next, nil
}

// Successors is the maze's bestfirst.SuccessorFunc; actions are directions.
func (m *Maze) Successors(p grid.Vec) ([]bestfirst.Successor[grid.Vec, grid.Vec], error) {
	if !m.Open(p) {
		return nil, errors.Wrapf(bestfirst.ErrInvalidSuccessor, "standing on %v, which is not open", p)
	}
	moves := m.Moves(p)
	successors := make([]bestfirst.Successor[grid.Vec, grid.Vec], 0, len(moves))
	for _, direction := range moves {
		successors = append(successors, bestfirst.Successor[grid.Vec, grid.Vec]{Action: direction, State: p.Add(direction)})
	}
	return successors, nil
}

// Problem walks from start to goal with unit steps and a Manhattan heuristic.
func (m *Maze) Problem(start, goal grid.Vec) (bestfirst.Problem[grid.Vec, grid.Vec], error) {
	if !m.Open(start) {
		return bestfirst.Problem[grid.Vec, grid.Vec]{}, errors.Errorf("start %v is not an open square", start)
	}
	if !m.Open(goal) {
		return bestfirst.Problem[grid.Vec, grid.Vec]{}, errors.Errorf("goal %v is not an open square", goal)
	}
	return bestfirst.Problem[grid.Vec, grid.Vec]{
		Initial:     start,
		Successors:  m.Successors,
		Goal:        func(p grid.Vec) bool { return p == goal },
		ForwardCost: bestfirst.UnitCost[grid.Vec],
		Heuristic:   func(p grid.Vec) float64 { return float64(grid.Manhattan(p, goal)) },
	}, nil
}

// Walk replays path from start and returns every square visited.
func (m *Maze) Walk(start grid.Vec, path []grid.Vec) ([]grid.Vec, error) {
	visited := []grid.Vec{start}
	current := start
	for _, direction := range path {
		next, err := m.Step(current, direction)
		if err != nil {
			return visited, err
		}
		current = next
		visited = append(visited, current)
	}
	return visited, nil
}
