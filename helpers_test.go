package bestfirst

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

type edge struct {
	From, To int
	Weight   float64
}

// weightedGraph maps a vertex to its outgoing edges.
type weightedGraph map[int][]edge

func (graph weightedGraph) successors(state int) ([]Successor[int, edge], error) {
	out := make([]Successor[int, edge], 0, len(graph[state]))
	for _, e := range graph[state] {
		out = append(out, Successor[int, edge]{Action: e, State: e.To})
	}
	return out, nil
}

func (graph weightedGraph) addEdge(from, to int, weight float64) {
	graph[from] = append(graph[from], edge{From: from, To: to, Weight: weight})
}

func pathWeight(path []edge) float64 {
	total := 0.0
	for _, e := range path {
		total += e.Weight
	}
	return total
}

func goalIs(target int) GoalFunc[int] {
	return func(state int) bool { return state == target }
}

// chainGraph links 0-1-...-(n-1) in both directions with unit weights.
func chainGraph(n int) weightedGraph {
	graph := weightedGraph{}
	for i := 0; i+1 < n; i++ {
		graph.addEdge(i, i+1, 1)
		graph.addEdge(i+1, i, 1)
	}
	return graph
}

// randomGraph builds a directed graph without self-loops. Unit weights when
// maxWeight is 1.
func randomGraph(rng *rand.Rand, vertices, edges, maxWeight int) weightedGraph {
	graph := weightedGraph{}
	for i := 0; i < edges; i++ {
		from, to := rng.Intn(vertices), rng.Intn(vertices)
		if from == to {
			continue
		}
		graph.addEdge(from, to, float64(1+rng.Intn(maxWeight)))
	}
	for vertex := range graph {
		sort.SliceStable(graph[vertex], func(i, j int) bool { return graph[vertex][i].To < graph[vertex][j].To })
	}
	return graph
}

// shortestDistances is a quadratic Dijkstra over graph (or its reverse).
func shortestDistances(graph weightedGraph, vertices, source int, reverse bool) []float64 {
	adjacency := graph
	if reverse {
		adjacency = weightedGraph{}
		for _, edges := range graph {
			for _, e := range edges {
				adjacency.addEdge(e.To, e.From, e.Weight)
			}
		}
	}
	distances := make([]float64, vertices)
	for i := range distances {
		distances[i] = math.Inf(1)
	}
	distances[source] = 0
	settled := make([]bool, vertices)
	for {
		best := -1
		for vertex := 0; vertex < vertices; vertex++ {
			if !settled[vertex] && !math.IsInf(distances[vertex], 1) && (best == -1 || distances[vertex] < distances[best]) {
				best = vertex
			}
		}
		if best == -1 {
			return distances
		}
		settled[best] = true
		for _, e := range adjacency[best] {
			if candidate := distances[best] + e.Weight; candidate < distances[e.To] {
				distances[e.To] = candidate
			}
		}
	}
}

// validatePath replays path from start and returns the visited states.
func validatePath(start int, path []edge) ([]int, error) {
	states := []int{start}
	current := start
	for i, e := range path {
		if e.From != current {
			return nil, errors.Errorf("action %d leaves %d, expected %d", i, e.From, current)
		}
		current = e.To
		states = append(states, current)
	}
	return states, nil
}
