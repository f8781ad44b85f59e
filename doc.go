// Package bestfirst provides a generic best-first state-space search engine.
//
// It exposes three entry points that share one driver:
//
//   - Search: A* over caller-supplied successor, goal, forward-cost and heuristic functions.
//   - BreadthFirstSearch and UniformCostSearch: Search with the cost model pinned.
//   - Stepper: iterate the search one expansion at a time to drive tools or debugging.
//
// The library is generic over state and action types. States must be
// comparable so they can be kept in the expanded set; equality that disagrees
// with successor generation (two equal states with different children) is a
// caller bug the engine cannot detect.
//
// A search owns its fringe and expanded set exclusively and runs on the
// calling goroutine. Callbacks must be pure: the engine may call them in any
// order and any number of times.
package bestfirst
