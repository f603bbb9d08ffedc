package aoc

import "fmt"

// Graph is an unweighted directed graph. Edges[a] lists the nodes a has an
// edge to, in the order they were added.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K][]K
}

func (g *Graph[K]) AddNode(a K) {
	if g.Nodes == nil {
		g.Nodes = make(map[K]bool)
	}
	g.Nodes[a] = true
}

// AddEdge adds the edge a->b, adding a and b as nodes. Adding the same edge
// twice is not checked.
func (g *Graph[K]) AddEdge(a, b K) {
	if g.Edges == nil {
		g.Edges = make(map[K][]K)
	}
	g.Edges[a] = append(g.Edges[a], b)
	g.AddNode(a)
	g.AddNode(b)
}

// BFSResult is the outcome of Graph.BFS.
type BFSResult[K comparable] struct {
	// Dist holds the edge count from the nearest source for every node the
	// search reached. Absent nodes were not reached.
	Dist map[K]int
	// Parent is the node each reached non-source node was first seen from.
	Parent map[K]K
	// Settled holds the nodes whose neighbors were expanded, plus the node
	// the search stopped on.
	Settled map[K]bool
}

// BFS runs a breadth-first search from sources, following each node's edges
// in insertion order. Sources that are not nodes of g are skipped. If stop
// is non-nil the search ends as soon as stop reports true for a settled node.
//
// g is only read, so concurrent searches may share it.
func (g *Graph[K]) BFS(sources []K, stop func(K) bool) *BFSResult[K] {
	r := &BFSResult[K]{
		Dist:    make(map[K]int),
		Parent:  make(map[K]K),
		Settled: make(map[K]bool),
	}
	frontier := NewQueue[K]()
	for _, s := range sources {
		if _, seen := r.Dist[s]; seen || !g.Nodes[s] {
			continue
		}
		r.Dist[s] = 0
		frontier.Push(s)
	}
	for frontier.Len() > 0 {
		v, _ := frontier.Pop()
		if r.Settled[v] {
			panic(fmt.Sprintf("aoc: %v settled twice", v))
		}
		r.Settled[v] = true
		if stop != nil && stop(v) {
			break
		}
		for _, n := range g.Edges[v] {
			if _, seen := r.Dist[n]; seen {
				continue
			}
			r.Dist[n] = r.Dist[v] + 1
			r.Parent[n] = v
			frontier.Push(n)
		}
	}
	return r
}

// Distance returns the final distance of k, or false if k was not settled.
func (r *BFSResult[K]) Distance(k K) (int, bool) {
	if !r.Settled[k] {
		return 0, false
	}
	return r.Dist[k], true
}

// Route follows Parent links back from k and returns the nodes from a
// source to k.
func (r *BFSResult[K]) Route(k K) []K {
	st := Stack[K]{k}
	for p, ok := r.Parent[k]; ok; p, ok = r.Parent[p] {
		st.Push(p)
	}
	out := make([]K, 0, len(st))
	for v, ok := st.Pop(); ok; v, ok = st.Pop() {
		out = append(out, v)
	}
	return out
}
