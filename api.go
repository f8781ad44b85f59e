package bestfirst

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Successor is one transition offered by a SuccessorFunc.
type Successor[StateType comparable, ActionType any] struct {
	Action ActionType
	State  StateType
}

// SuccessorFunc lists the transitions out of a state. It must return a finite
// list and must never offer the state itself. Impossible moves should be
// reported with an error wrapping ErrInvalidSuccessor.
type SuccessorFunc[StateType comparable, ActionType any] func(state StateType) ([]Successor[StateType, ActionType], error)

// GoalFunc reports whether a state ends the search.
type GoalFunc[StateType comparable] func(state StateType) bool

// Result contains the outcome of a search. A search that exhausts its fringe
// returns Found == false and a nil error: an unreachable goal is a normal
// outcome.
type Result[ActionType any] struct {
	Path []ActionType
	// TotalCost is the forward cost of Path.
	TotalCost float64
	// ExpandedNodes counts nodes popped and goal-tested, stale entries excluded.
	ExpandedNodes int
	// GeneratedNodes counts nodes admitted to the fringe, the root included.
	GeneratedNodes int
	Found          bool
}

// Options defines parameters for the search.
type Options struct {
	Dedup         DedupMode
	PathStorage   PathStorage
	MaxExpansions int
	Logger        logrus.FieldLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithDedup selects the admission filter applied to freshly generated children.
func WithDedup(mode DedupMode) Option {
	return func(options *Options) { options.Dedup = mode }
}

// WithPathStorage selects how node paths are stored.
func WithPathStorage(storage PathStorage) Option {
	return func(options *Options) { options.PathStorage = storage }
}

// WithMaxExpansions bounds the number of goal tests. Zero means unbounded.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// WithLogger routes search tracing to logger. Expansions are logged at trace
// level and outcomes at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Dedup:       DedupExact,
		PathStorage: PathCopy,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = discardLogger()
	}
	return searchOptions
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func levelEnabled(logger logrus.FieldLogger, level logrus.Level) bool {
	switch typed := logger.(type) {
	case *logrus.Logger:
		return typed.IsLevelEnabled(level)
	case *logrus.Entry:
		return typed.Logger.IsLevelEnabled(level)
	}
	return true
}

// Search executes A*: the fringe is ordered by forwardCost(path) +
// heuristic(state). The first goal popped is optimal when the heuristic is
// consistent. A nil forwardCost charges one per action; a nil heuristic is zero.
func Search[StateType comparable, ActionType any](
	contextObject context.Context,
	initialState StateType,
	successors SuccessorFunc[StateType, ActionType],
	goal GoalFunc[StateType],
	forwardCost ForwardCost[ActionType],
	heuristic Heuristic[StateType],
	options ...Option,
) (Result[ActionType], error) {
	stepper := NewStepper(contextObject, initialState, successors, goal, forwardCost, heuristic, options...)
	for !stepper.Done() {
		if _, _, err := stepper.advance(); err != nil {
			return stepper.Result(), err
		}
	}
	return stepper.Result(), nil
}

// BreadthFirstSearch is Search with unit step cost and no heuristic, which
// expands nodes in level order.
func BreadthFirstSearch[StateType comparable, ActionType any](
	contextObject context.Context,
	initialState StateType,
	successors SuccessorFunc[StateType, ActionType],
	goal GoalFunc[StateType],
	options ...Option,
) (Result[ActionType], error) {
	return Search(contextObject, initialState, successors, goal, nil, ZeroHeuristic[StateType], options...)
}

// UniformCostSearch is Search with no heuristic.
func UniformCostSearch[StateType comparable, ActionType any](
	contextObject context.Context,
	initialState StateType,
	successors SuccessorFunc[StateType, ActionType],
	goal GoalFunc[StateType],
	forwardCost ForwardCost[ActionType],
	options ...Option,
) (Result[ActionType], error) {
	return Search(contextObject, initialState, successors, goal, forwardCost, ZeroHeuristic[StateType], options...)
}

// --- Strategy form ---

// Problem bundles the callbacks of a search problem.
type Problem[StateType comparable, ActionType any] struct {
	Initial     StateType
	Successors  SuccessorFunc[StateType, ActionType]
	Goal        GoalFunc[StateType]
	ForwardCost ForwardCost[ActionType]
	Heuristic   Heuristic[StateType]
}

// Algorithm names one of the cost models Solve can pin.
type Algorithm int

const (
	BreadthFirst Algorithm = iota
	UniformCost
	AStar
)

// Algorithms lists every algorithm in report order.
var Algorithms = []Algorithm{AStar, UniformCost, BreadthFirst}

func (algorithm Algorithm) String() string {
	switch algorithm {
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	case AStar:
		return "astar"
	}
	return "unknown"
}

// Title is the human-readable algorithm name.
func (algorithm Algorithm) Title() string {
	switch algorithm {
	case BreadthFirst:
		return "Breadth-First Search"
	case UniformCost:
		return "Uniform Cost Search"
	case AStar:
		return "A*"
	}
	return "Unknown"
}

// ParseAlgorithm accepts the short names returned by String, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BreadthFirst, nil
	case "ucs":
		return UniformCost, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, errors.Errorf("unknown algorithm %q", name)
}

// Solve runs problem under algorithm. BreadthFirst ignores both cost
// functions, UniformCost ignores the heuristic.
func Solve[StateType comparable, ActionType any](
	contextObject context.Context,
	problem Problem[StateType, ActionType],
	algorithm Algorithm,
	options ...Option,
) (Result[ActionType], error) {
	if problem.Successors == nil || problem.Goal == nil {
		return Result[ActionType]{}, errors.New("problem needs both a successor and a goal function")
	}
	switch algorithm {
	case BreadthFirst:
		return BreadthFirstSearch(contextObject, problem.Initial, problem.Successors, problem.Goal, options...)
	case UniformCost:
		return UniformCostSearch(contextObject, problem.Initial, problem.Successors, problem.Goal, problem.ForwardCost, options...)
	case AStar:
		return Search(contextObject, problem.Initial, problem.Successors, problem.Goal, problem.ForwardCost, problem.Heuristic, options...)
	}
	return Result[ActionType]{}, errors.Errorf("unsupported algorithm %d", int(algorithm))
}
