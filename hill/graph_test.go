package hill

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hillclimb/aoc"
)

func TestClimbable(t *testing.T) {
	tests := []struct {
		from, to int
		want     bool
	}{
		{0, 0, true},
		{0, 1, true},
		{0, 2, false},
		{5, 0, true},
		{24, 25, true},
		{23, 25, false},
	}
	for _, tt := range tests {
		if got := Climbable(tt.from, tt.to); got != tt.want {
			t.Errorf("Climbable(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	// a c
	// b a
	h, err := New(aoc.Grid[int]{{0, 2}, {1, 0}}, aoc.Pt{}, aoc.Pt{X: 1})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		p    aoc.Pt
		mode Mode
		want []aoc.Pt
	}{
		{aoc.Pt{X: 0, Y: 0}, Forward, []aoc.Pt{{X: 0, Y: 1}}},
		{aoc.Pt{X: 0, Y: 0}, Reversed, []aoc.Pt{{X: 1, Y: 0}, {X: 0, Y: 1}}},
		{aoc.Pt{X: 1, Y: 0}, Forward, []aoc.Pt{{X: 1, Y: 1}, {X: 0, Y: 0}}},
		{aoc.Pt{X: 1, Y: 0}, Reversed, nil},
		{aoc.Pt{X: 0, Y: 1}, Forward, []aoc.Pt{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		{aoc.Pt{X: 1, Y: 1}, Reversed, []aoc.Pt{{X: 1, Y: 0}, {X: 0, Y: 1}}},
		{aoc.Pt{X: 99, Y: 0}, Forward, nil},
		{aoc.Pt{X: -1, Y: 0}, Reversed, nil},
		{aoc.Pt{X: 0, Y: 2}, Forward, nil},
	}
	for _, tt := range tests {
		var got []aoc.Pt
		h.Neighbors(tt.p, tt.mode, func(n aoc.Pt) bool {
			got = append(got, n)
			return true
		})
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Neighbors(%v, %v) mismatch (-want +got):\n%s", tt.p, tt.mode, diff)
		}
	}
}

func TestGraphEdges(t *testing.T) {
	h := MustParse(sample)
	size := h.Size()
	for _, mode := range []Mode{Forward, Reversed} {
		g := h.Graph(mode)
		if len(g.Nodes) != size.X*size.Y {
			t.Errorf("%v graph has %d nodes, want %d", mode, len(g.Nodes), size.X*size.Y)
		}
		for from, e := range g.Edges {
			for _, to := range e {
				if !adjacent(from, to) {
					t.Errorf("%v edge %v->%v joins cells that are not adjacent", mode, from, to)
				}
				up, down := from, to
				if mode == Reversed {
					up, down = to, from
				}
				if !Climbable(h.At(up), h.At(down)) {
					t.Errorf("%v edge %v->%v climbs from %d to %d", mode, from, to, h.At(up), h.At(down))
				}
			}
		}
	}
}

func TestGraphReversedFlipsForward(t *testing.T) {
	h := MustParse(sample)
	type edge struct{ A, B aoc.Pt }
	flipped := make(map[edge]bool)
	for a, e := range h.Graph(Forward).Edges {
		for _, b := range e {
			flipped[edge{b, a}] = true
		}
	}
	got := make(map[edge]bool)
	for a, e := range h.Graph(Reversed).Edges {
		for _, b := range e {
			got[edge{a, b}] = true
		}
	}
	if diff := cmp.Diff(flipped, got); diff != "" {
		t.Errorf("Reversed graph differs from the flipped Forward graph (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(h.Graph(Forward), h.Graph(Forward)); diff != "" {
		t.Errorf("Graph(Forward) is not deterministic:\n%s", diff)
	}
}

func adjacent(a, b aoc.Pt) bool {
	for _, d := range aoc.Directions {
		if a.Step(d) == b {
			return true
		}
	}
	return false
}
