package bestfirst

// ForwardCost returns the accumulated cost of a path from the initial state.
// It must be monotone non-decreasing in path length.
type ForwardCost[ActionType any] func(path []ActionType) float64

// Heuristic returns the estimated remaining cost from a state to the goal.
// A* returns an optimal path only when the heuristic never overestimates.
type Heuristic[StateType comparable] func(state StateType) float64

// UnitCost charges one per action.
func UnitCost[ActionType any](path []ActionType) float64 { return float64(len(path)) }

// ZeroHeuristic turns A* into uniform-cost search.
func ZeroHeuristic[StateType comparable](StateType) float64 { return 0 }

// costModel combines the two cost functions into a fringe priority.
type costModel[StateType comparable, ActionType any] struct {
	forwardCost ForwardCost[ActionType]
	heuristic   Heuristic[StateType]
}

func newCostModel[StateType comparable, ActionType any](
	forwardCost ForwardCost[ActionType],
	heuristic Heuristic[StateType],
) costModel[StateType, ActionType] {
	return costModel[StateType, ActionType]{forwardCost: forwardCost, heuristic: heuristic}
}

// unitForward reports whether the forward cost is the default path length,
// which lets trail storage price a node from its depth alone.
func (model costModel[StateType, ActionType]) unitForward() bool {
	return model.forwardCost == nil
}

func (model costModel[StateType, ActionType]) forward(path []ActionType, depth int) float64 {
	if model.forwardCost == nil {
		return float64(depth)
	}
	return model.forwardCost(path)
}

func (model costModel[StateType, ActionType]) estimate(state StateType) float64 {
	if model.heuristic == nil {
		return 0
	}
	return model.heuristic(state)
}
