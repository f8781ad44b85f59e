// Package runner builds the configured problems and runs them under each
// configured algorithm.
package runner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/config"
	"github.com/pdrpinto/bestfirst/internal/report"
	"github.com/pdrpinto/bestfirst/problems/dots"
	"github.com/pdrpinto/bestfirst/problems/grid"
	"github.com/pdrpinto/bestfirst/problems/maze"
	"github.com/pdrpinto/bestfirst/problems/sliding"
)

// Problem names accepted by Run.
const (
	Maze    = "maze"
	Sliding = "slide"
	Dots    = "dots"
)

// Problems lists every problem Run knows, in report order.
var Problems = []string{Maze, Dots, Sliding}

// Runner runs searches described by a validated configuration.
type Runner struct {
	cfg    config.Config
	logger logrus.FieldLogger
}

// New returns a Runner logging to logger.
func New(cfg config.Config, logger logrus.FieldLogger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Run solves the named problem once per configured algorithm. A run stopped
// by the expansion budget or the timeout is reported in its row; any other
// error aborts.
func (r *Runner) Run(ctx context.Context, name string) ([]report.Row, error) {
	algorithms, err := r.cfg.Search.ParsedAlgorithms()
	if err != nil {
		return nil, err
	}

	switch name {
	case Maze:
		m, err := r.maze()
		if err != nil {
			return nil, err
		}
		problem, err := m.Problem(toVec(r.cfg.Maze.Start), toVec(r.cfg.Maze.Goal))
		if err != nil {
			return nil, errors.Wrap(err, "maze")
		}
		return runAll(ctx, r, name, problem, algorithms, formatVec)

	case Dots:
		m, err := r.maze()
		if err != nil {
			return nil, err
		}
		positions := make([]grid.Vec, 0, len(r.cfg.Dots.Positions))
		for _, position := range r.cfg.Dots.Positions {
			positions = append(positions, toVec(position))
		}
		board, err := dots.New(m, positions)
		if err != nil {
			return nil, errors.Wrap(err, "dots")
		}
		problem, err := board.Problem(toVec(r.cfg.Maze.Start))
		if err != nil {
			return nil, errors.Wrap(err, "dots")
		}
		return runAll(ctx, r, name, problem, algorithms, formatVec)

	case Sliding:
		rng := rand.New(rand.NewSource(r.cfg.Sliding.Seed))
		start := sliding.Scramble(rng, r.cfg.Sliding.ScrambleMoves)
		r.logger.WithFields(logrus.Fields{
			"board":     fmt.Sprint(start),
			"moves":     r.cfg.Sliding.ScrambleMoves,
			"seed":      r.cfg.Sliding.Seed,
			"heuristic": sliding.ManhattanHeuristic(start),
		}).Info("scrambled sliding puzzle")
		problem, err := sliding.Problem(start)
		if err != nil {
			return nil, errors.Wrap(err, "sliding")
		}
		return runAll(ctx, r, name, problem, algorithms, formatVec)
	}
	return nil, errors.Errorf("unknown problem %q (want one of %v)", name, Problems)
}

func (r *Runner) maze() (*maze.Maze, error) {
	m, err := maze.Parse(r.cfg.Maze.Rows)
	if err != nil {
		return nil, errors.Wrap(err, "maze.rows")
	}
	return m, nil
}

func runAll[StateType comparable, ActionType any](
	ctx context.Context,
	r *Runner,
	name string,
	problem bestfirst.Problem[StateType, ActionType],
	algorithms []bestfirst.Algorithm,
	format func(ActionType) string,
) ([]report.Row, error) {
	options, err := r.cfg.Search.Options()
	if err != nil {
		return nil, err
	}

	rows := make([]report.Row, 0, len(algorithms))
	for _, algorithm := range algorithms {
		logger := r.logger.WithFields(logrus.Fields{"problem": name, "algorithm": algorithm.String()})
		row, err := runOne(ctx, r.cfg.Search.Timeout, problem, algorithm, append(options, bestfirst.WithLogger(logger)), format)
		row.Problem = name
		if err != nil {
			if !stoppedEarly(err) {
				return rows, errors.Wrapf(err, "%s with %s", name, algorithm)
			}
			logger.WithError(err).Warn("search stopped early")
			row.Error = err.Error()
		} else if row.Found {
			logger.WithFields(logrus.Fields{"moves": row.Moves, "expanded": row.Expanded}).Info("solved")
		} else {
			logger.Info("no solution")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func runOne[StateType comparable, ActionType any](
	ctx context.Context,
	timeout time.Duration,
	problem bestfirst.Problem[StateType, ActionType],
	algorithm bestfirst.Algorithm,
	options []bestfirst.Option,
	format func(ActionType) string,
) (report.Row, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	result, err := bestfirst.Solve(ctx, problem, algorithm, options...)
	row := report.Row{
		Algorithm: algorithm.Title(),
		Found:     result.Found,
		Moves:     len(result.Path),
		Cost:      result.TotalCost,
		Expanded:  result.ExpandedNodes,
		Generated: result.GeneratedNodes,
		Elapsed:   time.Since(started),
	}
	for _, action := range result.Path {
		row.Path = append(row.Path, format(action))
	}
	return row, err
}

func stoppedEarly(err error) bool {
	return errors.Is(err, bestfirst.ErrBudgetExhausted) ||
		errors.Is(err, context.DeadlineExceeded)
}

func toVec(point config.Point) grid.Vec { return grid.Vec{X: point.X, Y: point.Y} }

func formatVec(v grid.Vec) string { return v.String() }
