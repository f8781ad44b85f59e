// Package trail stores search paths as a shared parent-link tree kept in an
// arena, so sibling nodes share their common prefix.
package trail

// Root is the index of the empty path.
const Root = -1

type link[ActionType any] struct {
	parent int
	action ActionType
	depth  int
}

// Trail is an append-only arena of parent links. Indexes returned by Extend
// stay valid for the lifetime of the Trail.
type Trail[ActionType any] struct {
	links []link[ActionType]
}

// New returns an empty trail.
func New[ActionType any]() *Trail[ActionType] {
	return &Trail[ActionType]{}
}

// Len returns the number of stored links.
func (trail *Trail[ActionType]) Len() int { return len(trail.links) }

// Extend records action taken from the path ending at parent and returns the
// index of the new path.
func (trail *Trail[ActionType]) Extend(parent int, action ActionType) int {
	trail.links = append(trail.links, link[ActionType]{
		parent: parent,
		action: action,
		depth:  trail.Depth(parent) + 1,
	})
	return len(trail.links) - 1
}

// Depth returns the number of actions on the path ending at index.
func (trail *Trail[ActionType]) Depth(index int) int {
	if index == Root {
		return 0
	}
	return trail.links[index].depth
}

// Reconstruct rebuilds the actions from the root to index, in order.
func (trail *Trail[ActionType]) Reconstruct(index int) []ActionType {
	path := make([]ActionType, 0, trail.Depth(index))
	for current := index; current != Root; current = trail.links[current].parent {
		path = append(path, trail.links[current].action)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
