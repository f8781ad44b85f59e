package bestfirst

import "container/heap"

// Node is a search node: a state together with the actions that reached it.
// Nodes are never mutated once created.
type Node[StateType comparable, ActionType any] struct {
	State StateType
	// Path is nil under PathTrail storage; snapshots and results carry
	// the rebuilt path.
	Path  []ActionType
	Depth int

	trailIndex int
}

// FringeItem is one frontier entry. Sequence records insertion order and
// breaks ties between equal priorities first-in, first-out.
type FringeItem[StateType comparable, ActionType any] struct {
	Node     Node[StateType, ActionType]
	Priority float64
	Sequence uint64
}

type fringeQueue[StateType comparable, ActionType any] []*FringeItem[StateType, ActionType]

func (queue fringeQueue[StateType, ActionType]) Len() int { return len(queue) }
func (queue fringeQueue[StateType, ActionType]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue fringeQueue[StateType, ActionType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
}

func (queue *fringeQueue[StateType, ActionType]) Push(x any) {
	*queue = append(*queue, x.(*FringeItem[StateType, ActionType]))
}

func (queue *fringeQueue[StateType, ActionType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}

// Fringe is the ordered frontier of nodes waiting for expansion, ascending
// by priority and first-in, first-out among equal priorities.
type Fringe[StateType comparable, ActionType any] struct {
	queue        fringeQueue[StateType, ActionType]
	nextSequence uint64
}

// NewFringe returns an empty fringe.
func NewFringe[StateType comparable, ActionType any]() *Fringe[StateType, ActionType] {
	fringe := &Fringe[StateType, ActionType]{queue: make(fringeQueue[StateType, ActionType], 0)}
	heap.Init(&fringe.queue)
	return fringe
}

// Len returns the number of entries, stale ones included.
func (fringe *Fringe[StateType, ActionType]) Len() int { return fringe.queue.Len() }

// Insert places node so that ascending priority order is preserved.
func (fringe *Fringe[StateType, ActionType]) Insert(node Node[StateType, ActionType], priority float64) {
	heap.Push(&fringe.queue, &FringeItem[StateType, ActionType]{
		Node:     node,
		Priority: priority,
		Sequence: fringe.nextSequence,
	})
	fringe.nextSequence++
}

// PopMin removes and returns the cheapest entry, or ErrEmptyFringe.
func (fringe *Fringe[StateType, ActionType]) PopMin() (FringeItem[StateType, ActionType], error) {
	if fringe.queue.Len() == 0 {
		return FringeItem[StateType, ActionType]{}, ErrEmptyFringe
	}
	return *heap.Pop(&fringe.queue).(*FringeItem[StateType, ActionType]), nil
}

// restore puts back an entry returned by PopMin. It keeps its sequence number,
// so its place among equal priorities is unchanged.
func (fringe *Fringe[StateType, ActionType]) restore(item FringeItem[StateType, ActionType]) {
	heap.Push(&fringe.queue, &item)
}
