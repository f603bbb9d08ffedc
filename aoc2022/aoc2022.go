// Command aoc2022 runs the Advent of Code 2022 solutions.
//
// Usage:
//
//	aoc2022 [-day N] [-part P] [-sample | -skip-sample] [-debug]
package main

import (
	_ "embed"

	"github.com/hillclimb/aoc"
	"github.com/hillclimb/aoc/hill"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed aoc2022.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) heightmap() *hill.Heightmap {
	return aoc.MustGet(hill.FromGrid(s.Grid()))
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	h := s.heightmap()
	if s.Debugging() {
		if route, err := h.Route(h.Start, h.End); err == nil {
			s.Debugf("%s", h.RenderRoute(route))
		}
	}
	n, err := h.ShortestPath()
	if err != nil {
		return err
	}
	return n
}

// want=29
func (s solver) D12p2() any {
	n, err := s.heightmap().NearestLowest()
	if err != nil {
		return err
	}
	return n
}

// want=29
func (s solver) D12p2brute() any {
	n, err := s.heightmap().NearestLowestBrute()
	if err != nil {
		return err
	}
	return n
}
