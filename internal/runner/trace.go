package runner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/problems/grid"
)

// TraceStep is one maze expansion as written by the trace command.
type TraceStep struct {
	Step     int      `yaml:"step"`
	Current  string   `yaml:"current,omitempty"`
	Priority float64  `yaml:"priority"`
	Admitted int      `yaml:"admitted"`
	Filtered int      `yaml:"filtered"`
	Stale    int      `yaml:"stale,omitempty"`
	Fringe   int      `yaml:"fringe"`
	Past     int      `yaml:"past"`
	Done     bool     `yaml:"done,omitempty"`
	Found    bool     `yaml:"found,omitempty"`
	Path     []string `yaml:"path,omitempty"`
}

// TraceMaze steps through the configured maze under algorithm and hands
// every expansion to visit. Engine options, the expansion budget included,
// come from the search configuration.
func (r *Runner) TraceMaze(ctx context.Context, algorithm bestfirst.Algorithm, visit func(TraceStep) error) error {
	m, err := r.maze()
	if err != nil {
		return err
	}
	problem, err := m.Problem(toVec(r.cfg.Maze.Start), toVec(r.cfg.Maze.Goal))
	if err != nil {
		return errors.Wrap(err, "maze")
	}
	options, err := r.cfg.Search.Options()
	if err != nil {
		return err
	}
	options = append(options, bestfirst.WithLogger(r.logger.WithField("algorithm", algorithm.String())))

	forwardCost, heuristic := problem.ForwardCost, problem.Heuristic
	switch algorithm {
	case bestfirst.BreadthFirst:
		forwardCost, heuristic = nil, nil
	case bestfirst.UniformCost:
		heuristic = nil
	}

	stepper := bestfirst.NewStepper(ctx, problem.Initial, problem.Successors, problem.Goal, forwardCost, heuristic, options...)
	for !stepper.Done() {
		snapshot, err := stepper.Step()
		if err != nil {
			return err
		}
		if err := visit(traceStep(snapshot)); err != nil {
			return err
		}
	}
	return nil
}

func traceStep(snapshot bestfirst.StepSnapshot[grid.Vec, grid.Vec]) TraceStep {
	step := TraceStep{
		Step:     snapshot.StepIndex,
		Priority: snapshot.Priority,
		Admitted: snapshot.Admitted,
		Filtered: snapshot.Filtered,
		Stale:    snapshot.Stale,
		Fringe:   snapshot.FringeSize,
		Past:     snapshot.PastSize,
		Done:     snapshot.Done,
		Found:    snapshot.Found,
	}
	// An exhausted fringe produces a final snapshot with nothing expanded.
	if snapshot.Path != nil {
		step.Current = snapshot.Current.String()
		for _, direction := range snapshot.Path {
			step.Path = append(step.Path, direction.String())
		}
	}
	return step
}
