package bestfirst

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[StateType comparable, ActionType any] struct {
	Current  StateType
	Path     []ActionType
	Priority float64
	// Admitted and Filtered count the children of Current that entered the
	// fringe and the ones the dedup policy dropped.
	Admitted int
	Filtered int
	// Stale counts already-expanded entries discarded before Current was found.
	Stale      int
	FringeSize int
	PastSize   int
	Done       bool
	Found      bool
	StepIndex  int
}

// Stepper runs the search one expansion at a time. Search drives a Stepper
// to completion; tools can call Step directly to observe each expansion.
type Stepper[StateType comparable, ActionType any] struct {
	contextObject context.Context
	successors    SuccessorFunc[StateType, ActionType]
	goal          GoalFunc[StateType]
	costs         costModel[StateType, ActionType]
	paths         pathAccumulator[StateType, ActionType]
	options       Options
	traceEnabled  bool

	fringe *Fringe[StateType, ActionType]
	past   *Past[StateType]

	stepCount      int
	expandedNodes  int
	generatedNodes int
	done           bool
	found          bool
	failure        error
	solution       []ActionType
	solutionCost   float64
}

// NewStepper seeds a search with the root node (empty path, initial state).
// A nil forwardCost charges one per action; a nil heuristic is zero.
func NewStepper[StateType comparable, ActionType any](
	contextObject context.Context,
	initialState StateType,
	successors SuccessorFunc[StateType, ActionType],
	goal GoalFunc[StateType],
	forwardCost ForwardCost[ActionType],
	heuristic Heuristic[StateType],
	options ...Option,
) *Stepper[StateType, ActionType] {
	searchOptions := applyOptions(options)

	s := &Stepper[StateType, ActionType]{
		contextObject: contextObject,
		successors:    successors,
		goal:          goal,
		costs:         newCostModel(forwardCost, heuristic),
		paths:         newPathAccumulator[StateType, ActionType](searchOptions.PathStorage),
		options:       searchOptions,
		traceEnabled:  levelEnabled(searchOptions.Logger, logrus.TraceLevel),
		fringe:        NewFringe[StateType, ActionType](),
		past:          NewPast[StateType](),
	}

	root := s.paths.root(initialState)
	s.fringe.Insert(root, s.priority(root))
	s.generatedNodes = 1
	return s
}

// Done reports whether the search has reached the goal, exhausted the fringe
// or failed.
func (s *Stepper[StateType, ActionType]) Done() bool { return s.done }

// Result returns the outcome so far. It is final once Done reports true.
func (s *Stepper[StateType, ActionType]) Result() Result[ActionType] {
	return Result[ActionType]{
		Path:           s.solution,
		TotalCost:      s.solutionCost,
		ExpandedNodes:  s.expandedNodes,
		GeneratedNodes: s.generatedNodes,
		Found:          s.found,
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the final snapshot.
func (s *Stepper[StateType, ActionType]) Step() (StepSnapshot[StateType, ActionType], error) {
	snapshot, current, err := s.advance()
	if err != nil || current == nil {
		return snapshot, err
	}
	if snapshot.Found {
		snapshot.Path = s.solution
	} else {
		snapshot.Path = s.paths.path(*current)
	}
	return snapshot, nil
}

// advance performs one expansion. It returns the expanded node, or nil when
// nothing was expanded.
func (s *Stepper[StateType, ActionType]) advance() (StepSnapshot[StateType, ActionType], *Node[StateType, ActionType], error) {
	if s.failure != nil {
		return s.snapshot(), nil, s.failure
	}
	if s.done {
		return s.snapshot(), nil, nil
	}
	if err := s.contextObject.Err(); err != nil {
		return s.snapshot(), nil, s.fail(errors.Wrap(err, "search interrupted"))
	}
	// --- Pop the cheapest entry that has not been expanded yet ---
	stale := 0
	var currentItem FringeItem[StateType, ActionType]
	for {
		popped, err := s.fringe.PopMin()
		if errors.Is(err, ErrEmptyFringe) {
			s.done = true
			s.options.Logger.WithFields(logrus.Fields{
				"expanded":  s.expandedNodes,
				"generated": s.generatedNodes,
			}).Debug("fringe exhausted without reaching a goal")
			snapshot := s.snapshot()
			snapshot.Stale = stale
			return snapshot, nil, nil
		}
		if s.past.Contains(popped.Node.State) {
			stale++
			continue
		}
		currentItem = popped
		break
	}

	// An exhausted fringe ends the search normally even with no budget left.
	if s.options.MaxExpansions > 0 && s.expandedNodes >= s.options.MaxExpansions {
		s.fringe.restore(currentItem)
		err := s.fail(errors.Wrapf(ErrBudgetExhausted, "after %d expansions", s.expandedNodes))
		snapshot := s.snapshot()
		snapshot.Stale = stale
		return snapshot, nil, err
	}

	s.stepCount++
	s.expandedNodes++
	current := currentItem.Node

	// --- Goal check ---
	if s.goal(current.State) {
		s.done = true
		s.found = true
		s.solution = s.paths.path(current)
		s.solutionCost = s.costs.forward(s.solution, current.Depth)
		s.options.Logger.WithFields(logrus.Fields{
			"expanded":  s.expandedNodes,
			"generated": s.generatedNodes,
			"length":    len(s.solution),
			"cost":      s.solutionCost,
		}).Debug("goal reached")
		snapshot := s.snapshot()
		snapshot.Current = current.State
		snapshot.Priority = currentItem.Priority
		snapshot.Stale = stale
		return snapshot, &current, nil
	}

	// --- Expand ---
	s.past.Add(current.State)
	successors, err := s.successors(current.State)
	if err != nil {
		return s.snapshot(), nil, s.fail(errors.Wrapf(err, "expanding node at depth %d", current.Depth))
	}

	admitted, filtered := 0, 0
	for _, successor := range successors {
		if successor.State == current.State {
			return s.snapshot(), nil, s.fail(errors.Wrap(ErrInvalidSuccessor, "successor returned the current state"))
		}
		if !s.past.admits(s.options.Dedup, successor.State, len(successors)) {
			filtered++
			continue
		}
		child := s.paths.child(current, successor.Action, successor.State)
		s.fringe.Insert(child, s.priority(child))
		s.generatedNodes++
		admitted++
	}

	if s.traceEnabled {
		fields := logrus.Fields{
			"step":     s.stepCount,
			"depth":    current.Depth,
			"priority": currentItem.Priority,
			"admitted": admitted,
			"filtered": filtered,
			"stale":    stale,
			"fringe":   s.fringe.Len(),
		}
		if s.paths.storage == PathTrail {
			fields["trail"] = s.paths.trail.Len()
		}
		s.options.Logger.WithFields(fields).Trace("expanded node")
	}

	snapshot := s.snapshot()
	snapshot.Current = current.State
	snapshot.Priority = currentItem.Priority
	snapshot.Admitted = admitted
	snapshot.Filtered = filtered
	snapshot.Stale = stale
	return snapshot, &current, nil
}

func (s *Stepper[StateType, ActionType]) priority(node Node[StateType, ActionType]) float64 {
	var path []ActionType
	if !s.costs.unitForward() {
		path = s.paths.path(node)
	}
	return s.costs.forward(path, node.Depth) + s.costs.estimate(node.State)
}

func (s *Stepper[StateType, ActionType]) fail(err error) error {
	s.done = true
	s.failure = err
	return err
}

func (s *Stepper[StateType, ActionType]) snapshot() StepSnapshot[StateType, ActionType] {
	return StepSnapshot[StateType, ActionType]{
		FringeSize: s.fringe.Len(),
		PastSize:   s.past.Len(),
		Done:       s.done,
		Found:      s.found,
		StepIndex:  s.stepCount,
	}
}
