package bestfirst

import "github.com/pkg/errors"

// DedupMode selects how freshly generated children are filtered against the
// expanded set before they enter the fringe. Popped nodes are always checked
// against the full set, whatever the mode.
type DedupMode int

const (
	// DedupExact drops children whose state has already been expanded.
	DedupExact DedupMode = iota
	// DedupRecentWindow only looks at the 3×children+1 most recently expanded
	// states. Misses are caught later by the pop-time check.
	DedupRecentWindow
	// DedupNone admits every child.
	DedupNone
)

var dedupModeNames = map[DedupMode]string{
	DedupExact:        "exact",
	DedupRecentWindow: "window",
	DedupNone:         "none",
}

func (mode DedupMode) String() string {
	if name, ok := dedupModeNames[mode]; ok {
		return name
	}
	return "unknown"
}

// ParseDedupMode is the inverse of DedupMode.String.
func ParseDedupMode(name string) (DedupMode, error) {
	for mode, modeName := range dedupModeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return 0, errors.Errorf("unknown dedup mode %q", name)
}

// Past is the append-only set of expanded states.
type Past[StateType comparable] struct {
	order   []StateType
	members map[StateType]struct{}
}

// NewPast returns an empty expanded set.
func NewPast[StateType comparable]() *Past[StateType] {
	return &Past[StateType]{members: make(map[StateType]struct{})}
}

// Len returns the number of expanded states.
func (past *Past[StateType]) Len() int { return len(past.order) }

// Add records state as expanded. Adding a state twice is a driver bug and
// leaves the set unchanged.
func (past *Past[StateType]) Add(state StateType) {
	if _, exists := past.members[state]; exists {
		return
	}
	past.members[state] = struct{}{}
	past.order = append(past.order, state)
}

// Contains is the exact membership test.
func (past *Past[StateType]) Contains(state StateType) bool {
	_, exists := past.members[state]
	return exists
}

// ContainsRecent scans the trailing window of the expansion order starting at
// max(0, |past| − 3×branching − 1).
func (past *Past[StateType]) ContainsRecent(state StateType, branching int) bool {
	start := len(past.order) - 3*branching - 1
	if start < 0 {
		start = 0
	}
	for _, recent := range past.order[start:] {
		if recent == state {
			return true
		}
	}
	return false
}

// admits applies mode to a child of an expansion that produced branching children.
func (past *Past[StateType]) admits(mode DedupMode, state StateType, branching int) bool {
	switch mode {
	case DedupRecentWindow:
		return !past.ContainsRecent(state, branching)
	case DedupNone:
		return true
	default:
		return !past.Contains(state)
	}
}
