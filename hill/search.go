package hill

import (
	"fmt"
	"math"
	"slices"

	"github.com/hillclimb/aoc"
)

// Cells returns the cells at elevation e in row-major order.
func (h *Heightmap) Cells(e int) []aoc.Pt {
	var out []aoc.Pt
	h.Elevations.ForEach(func(p aoc.Pt, v int) {
		if v == e {
			out = append(out, p)
		}
	})
	return out
}

func until(target aoc.Pt) func(aoc.Pt) bool {
	return func(p aoc.Pt) bool { return p == target }
}

// ShortestPath returns the fewest steps from Start to End. It returns
// ErrNoPath if End cannot be reached.
func (h *Heightmap) ShortestPath() (int, error) {
	return Steps(h.Graph(Forward), h.Start, h.End)
}

// Steps returns the fewest steps from one cell to another over g, which is
// only read and may be shared between goroutines. A cell that is not in g is
// never reached.
func Steps(g *aoc.Graph[aoc.Pt], from, to aoc.Pt) (int, error) {
	d, ok := g.BFS([]aoc.Pt{from}, until(to)).Distance(to)
	if !ok {
		return 0, fmt.Errorf("%w from %v to %v", ErrNoPath, from, to)
	}
	return d, nil
}

// NearestLowest returns the fewest steps to End from any cell at the lowest
// elevation. It searches the Reversed graph outward from End and picks the
// closest lowest cell among everything it settled.
func (h *Heightmap) NearestLowest() (int, error) {
	r := h.Graph(Reversed).BFS([]aoc.Pt{h.End}, nil)
	best := -1
	for p := range r.Settled {
		if h.At(p) != Lowest {
			continue
		}
		if d := r.Dist[p]; best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("%w from any lowest cell to %v", ErrNoPath, h.End)
	}
	return best, nil
}

// NearestLowestForward gives the same answer as NearestLowest by searching
// the Forward graph from every lowest cell at once.
func (h *Heightmap) NearestLowestForward() (int, error) {
	d, ok := h.Graph(Forward).BFS(h.Cells(Lowest), until(h.End)).Distance(h.End)
	if !ok {
		return 0, fmt.Errorf("%w from any lowest cell to %v", ErrNoPath, h.End)
	}
	return d, nil
}

// NearestLowestBrute gives the same answer as NearestLowest by running a
// separate search from each lowest cell, in parallel over one shared graph.
func (h *Heightmap) NearestLowestBrute() (int, error) {
	g := h.Graph(Forward)
	steps := aoc.Parallel(h.Cells(Lowest), func(start aoc.Pt) int {
		n, err := Steps(g, start, h.End)
		if err != nil {
			return math.MaxInt
		}
		return n
	})
	if len(steps) > 0 {
		if best := slices.Min(steps); best != math.MaxInt {
			return best, nil
		}
	}
	return 0, fmt.Errorf("%w from any lowest cell to %v", ErrNoPath, h.End)
}

// Distances returns the distance from the nearest of sources to every cell
// reachable in mode. Unreachable cells and sources outside the heightmap are
// absent.
func (h *Heightmap) Distances(mode Mode, sources ...aoc.Pt) map[aoc.Pt]int {
	return h.Graph(mode).BFS(sources, nil).Dist
}

// Route returns one shortest route from one cell to another, both ends
// included.
func (h *Heightmap) Route(from, to aoc.Pt) ([]aoc.Pt, error) {
	for _, p := range []aoc.Pt{from, to} {
		if !h.Elevations.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	r := h.Graph(Forward).BFS([]aoc.Pt{from}, until(to))
	if _, ok := r.Distance(to); !ok {
		return nil, fmt.Errorf("%w from %v to %v", ErrNoPath, from, to)
	}
	return r.Route(to), nil
}

// RenderRoute draws route over the heightmap: each step is marked with the
// arrow of the direction it leaves in, the last cell with E and every other
// cell with a dot.
func (h *Heightmap) RenderRoute(route []aoc.Pt) string {
	marks := make(map[aoc.Pt]rune, len(route))
	for i, p := range route {
		if i == len(route)-1 {
			marks[p] = 'E'
			break
		}
		marks[p] = rune(aoc.DirectionTo(p, route[i+1]).String()[0])
	}
	return h.Elevations.Render(func(p aoc.Pt, _ int) rune {
		if r, ok := marks[p]; ok {
			return r
		}
		return '.'
	})
}

// ShortestPathForward parses text and returns the fewest steps from S to E.
func ShortestPathForward(text string) (int, error) {
	h, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return h.ShortestPath()
}

// ShortestPathReverseToLowest parses text and returns the fewest steps to E
// from any cell at elevation a.
func ShortestPathReverseToLowest(text string) (int, error) {
	h, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return h.NearestLowest()
}
