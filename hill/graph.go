package hill

import "github.com/hillclimb/aoc"

// Mode selects which way edges point.
type Mode int

const (
	// Forward edges go from a cell to each neighbor it can climb to.
	Forward Mode = iota
	// Reversed edges are the Forward edges with their endpoints swapped, so
	// a search from the end finds every cell the end is reachable from.
	Reversed
)

func (m Mode) String() string {
	switch m {
	case Forward:
		return "forward"
	case Reversed:
		return "reversed"
	}
	return "unknown"
}

// Climbable reports whether a step from elevation from to elevation to is
// allowed: up by at most one, or down by any amount.
func Climbable(from, to int) bool {
	return to <= from+1
}

// Neighbors calls f with each cell that p has an edge to in mode, until f
// returns false. It does nothing if p is outside the heightmap.
func (h *Heightmap) Neighbors(p aoc.Pt, mode Mode, f func(aoc.Pt) (keepGoing bool)) {
	if !h.Elevations.InBounds(p) {
		return
	}
	e := h.At(p)
	h.Elevations.ForImmediateNeighbors(p, func(n aoc.Pt, _ aoc.Direction) bool {
		from, to := e, h.At(n)
		if mode == Reversed {
			from, to = to, from
		}
		if !Climbable(from, to) {
			return true
		}
		return f(n)
	})
}

// Graph returns the directed graph of the heightmap in mode. Every cell is a
// node; each cell's edges follow Neighbors order.
func (h *Heightmap) Graph(mode Mode) *aoc.Graph[aoc.Pt] {
	g := new(aoc.Graph[aoc.Pt])
	h.Elevations.ForEach(func(p aoc.Pt, _ int) {
		g.AddNode(p)
		h.Neighbors(p, mode, func(n aoc.Pt) bool {
			g.AddEdge(p, n)
			return true
		})
	})
	return g
}
