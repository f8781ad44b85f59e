package bestfirst

import "github.com/pkg/errors"

var (
	// ErrEmptyFringe is returned by Fringe.PopMin when no entries remain.
	ErrEmptyFringe = errors.New("empty fringe")

	// ErrInvalidSuccessor marks a transition the successor generator should
	// never have produced: an impossible move or a self-loop.
	ErrInvalidSuccessor = errors.New("invalid successor")

	// ErrBudgetExhausted is returned when the expansion budget set with
	// WithMaxExpansions runs out before the search terminates.
	ErrBudgetExhausted = errors.New("expansion budget exhausted")
)
