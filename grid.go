package aoc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular block of cells indexed as g[y][x].
type Grid[T any] [][]T

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) At(p Pt) T     { return g[p.Y][p.X] }
func (g Grid[T]) Set(p Pt, v T) { g[p.Y][p.X] = v }

// Size returns the width and height of g, taken from its first row.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// InBounds reports whether p addresses a cell of g.
func (g Grid[T]) InBounds(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// Hash returns a hash of the contents of g.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Render draws g one row per line using cell to pick each rune.
func (g Grid[T]) Render(cell func(Pt, T) rune) string {
	var sb strings.Builder
	g.ForEach(func(p Pt, v T) {
		sb.WriteRune(cell(p, v))
		if p.X == len(g[p.Y])-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

// ForImmediateNeighbors calls f with each in-bounds orthogonal neighbor of
// p, in Up, Right, Down, Left order, until f returns false. The direction
// passed is the one taken from p.
func (g Grid[T]) ForImmediateNeighbors(p Pt, f func(Pt, Direction) (keepGoing bool)) {
	for _, d := range Directions {
		n := p.Step(d)
		if g.InBounds(n) && !f(n, d) {
			return
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four orthogonal directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

var (
	arrows = [...]string{Up: "^", Right: ">", Down: "v", Left: "<"}
	deltas = [...]Pt{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}
)

// DirectionTo returns the direction of the single orthogonal step from a
// to b. It panics if b is not an orthogonal neighbor of a.
func DirectionTo(a, b Pt) Direction {
	for _, d := range Directions {
		if a.Step(d) == b {
			return d
		}
	}
	panic(fmt.Sprintf("%v is not next to %v", b, a))
}

// String returns the arrow drawn for d.
func (d Direction) String() string {
	if d < Up || d > Left {
		return ""
	}
	return arrows[d]
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the point one cell away from p in direction d. Up decreases Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	delta := deltas[d]
	return Pt2[T]{p.X + T(delta.X), p.Y + T(delta.Y)}
}
