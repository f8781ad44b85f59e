package bestfirst

import (
	"github.com/pkg/errors"

	"github.com/pdrpinto/bestfirst/internal/trail"
)

// PathStorage selects how node paths are kept while searching.
type PathStorage int

const (
	// PathCopy gives every fringe entry its own copy of its actions.
	PathCopy PathStorage = iota
	// PathTrail keeps a shared parent-link tree and rebuilds a path only
	// when it is needed: for a custom forward cost, a snapshot or the result.
	PathTrail
)

func (storage PathStorage) String() string {
	switch storage {
	case PathCopy:
		return "copy"
	case PathTrail:
		return "trail"
	}
	return "unknown"
}

// ParsePathStorage is the inverse of PathStorage.String.
func ParsePathStorage(name string) (PathStorage, error) {
	switch name {
	case "copy":
		return PathCopy, nil
	case "trail":
		return PathTrail, nil
	}
	return 0, errors.Errorf("unknown path storage %q", name)
}

// extendPath returns a fresh path with action appended; path is left untouched.
func extendPath[ActionType any](path []ActionType, action ActionType) []ActionType {
	extended := make([]ActionType, len(path)+1)
	copy(extended, path)
	extended[len(path)] = action
	return extended
}

// pathAccumulator builds child nodes under the selected storage.
type pathAccumulator[StateType comparable, ActionType any] struct {
	storage PathStorage
	trail   *trail.Trail[ActionType]
}

func newPathAccumulator[StateType comparable, ActionType any](storage PathStorage) pathAccumulator[StateType, ActionType] {
	accumulator := pathAccumulator[StateType, ActionType]{storage: storage}
	if storage == PathTrail {
		accumulator.trail = trail.New[ActionType]()
	}
	return accumulator
}

func (accumulator pathAccumulator[StateType, ActionType]) root(state StateType) Node[StateType, ActionType] {
	node := Node[StateType, ActionType]{State: state, trailIndex: trail.Root}
	if accumulator.storage == PathCopy {
		node.Path = []ActionType{}
	}
	return node
}

func (accumulator pathAccumulator[StateType, ActionType]) child(
	parent Node[StateType, ActionType],
	action ActionType,
	state StateType,
) Node[StateType, ActionType] {
	if accumulator.storage == PathTrail {
		index := accumulator.trail.Extend(parent.trailIndex, action)
		return Node[StateType, ActionType]{State: state, Depth: parent.Depth + 1, trailIndex: index}
	}
	return Node[StateType, ActionType]{
		State:      state,
		Path:       extendPath(parent.Path, action),
		Depth:      parent.Depth + 1,
		trailIndex: trail.Root,
	}
}

// path returns the actions leading to node.
func (accumulator pathAccumulator[StateType, ActionType]) path(node Node[StateType, ActionType]) []ActionType {
	if accumulator.storage == PathTrail {
		return accumulator.trail.Reconstruct(node.trailIndex)
	}
	return node.Path
}
