// Package hill finds the fewest steps across a heightmap where each step may
// climb at most one level (Advent of Code 2022, day 12).
//
// A heightmap is a block of lowercase letters, a being the lowest elevation
// and z the highest, with one S marking the start (elevation a) and one E
// marking the end (elevation z).
package hill

import (
	"errors"
	"fmt"

	"github.com/hillclimb/aoc"
	"tailscale.com/util/deephash"
)

const (
	// Lowest is the elevation of 'a' and of the start marker.
	Lowest = 0
	// Highest is the elevation of 'z' and of the end marker.
	Highest = 'z' - 'a'
)

var (
	// ErrEmptyGrid is returned for input with no rows or no columns.
	ErrEmptyGrid = errors.New("hill: heightmap has no cells")
	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = errors.New("hill: rows differ in length")
	// ErrInvalidLabel is returned for a character other than a..z, S or E,
	// or an elevation outside Lowest..Highest.
	ErrInvalidLabel = errors.New("hill: invalid elevation label")
	// ErrMissingMarker is returned when S or E does not appear.
	ErrMissingMarker = errors.New("hill: missing start or end marker")
	// ErrDuplicateMarker is returned when S or E appears more than once.
	ErrDuplicateMarker = errors.New("hill: duplicate start or end marker")
	// ErrOutOfBounds is returned for a point outside the heightmap.
	ErrOutOfBounds = errors.New("hill: point outside heightmap")
	// ErrNoPath is returned when no route satisfies the climbing rule.
	ErrNoPath = errors.New("hill: no path")
)

// Label maps a heightmap character to its elevation. start and end report
// whether c is the start or end marker. ok is false for any other character
// outside a..z.
func Label(c byte) (elevation int, start, end, ok bool) {
	switch {
	case c == 'S':
		return Lowest, true, false, true
	case c == 'E':
		return Highest, false, true, true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), false, false, true
	}
	return 0, false, false, false
}

// Heightmap is a parsed, read-only grid of elevations.
type Heightmap struct {
	Elevations aoc.Grid[int]
	Start, End aoc.Pt
}

// Parse reads a heightmap. Rows are separated by newlines; a trailing
// newline and \r\n endings are accepted.
func Parse(text string) (*Heightmap, error) {
	return FromGrid(aoc.ParseGrid(text))
}

// FromGrid reads a heightmap from its labels, one byte per cell.
func FromGrid(labels aoc.Grid[byte]) (*Heightmap, error) {
	size := labels.Size()
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmptyGrid
	}
	h := &Heightmap{Elevations: aoc.MakeGrid[int](size.X, size.Y)}
	var haveStart, haveEnd bool
	for y, row := range labels {
		if len(row) != size.X {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, y, len(row), size.X)
		}
		for x, c := range row {
			p := aoc.Pt{X: x, Y: y}
			e, start, end, ok := Label(c)
			if !ok {
				return nil, fmt.Errorf("%w %q at %v", ErrInvalidLabel, c, p)
			}
			switch {
			case start && haveStart:
				return nil, fmt.Errorf("%w: second S at %v", ErrDuplicateMarker, p)
			case end && haveEnd:
				return nil, fmt.Errorf("%w: second E at %v", ErrDuplicateMarker, p)
			case start:
				h.Start, haveStart = p, true
			case end:
				h.End, haveEnd = p, true
			}
			h.Elevations.Set(p, e)
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: no S", ErrMissingMarker)
	}
	if !haveEnd {
		return nil, fmt.Errorf("%w: no E", ErrMissingMarker)
	}
	return h, nil
}

// New builds a heightmap from an existing elevation grid. The grid is copied.
// Unlike Parse, start and end may be the same cell.
func New(elevations aoc.Grid[int], start, end aoc.Pt) (*Heightmap, error) {
	size := elevations.Size()
	if size.X == 0 || size.Y == 0 {
		return nil, ErrEmptyGrid
	}
	h := &Heightmap{
		Elevations: aoc.MakeGrid[int](size.X, size.Y),
		Start:      start,
		End:        end,
	}
	for y, row := range elevations {
		if len(row) != size.X {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, y, len(row), size.X)
		}
		for x, e := range row {
			if e < Lowest || e > Highest {
				return nil, fmt.Errorf("%w: elevation %d at %v", ErrInvalidLabel, e, aoc.Pt{X: x, Y: y})
			}
		}
		copy(h.Elevations[y], row)
	}
	for _, p := range []aoc.Pt{start, end} {
		if !h.Elevations.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	return h, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) *Heightmap {
	return aoc.MustGet(Parse(text))
}

// Size returns the width and height of the heightmap as a point.
func (h *Heightmap) Size() aoc.Pt {
	return h.Elevations.Size()
}

// At returns the elevation at p.
func (h *Heightmap) At(p aoc.Pt) int {
	return h.Elevations.At(p)
}

// Hash returns a hash of the elevations and markers.
func (h *Heightmap) Hash() deephash.Sum {
	v := struct {
		Elevations deephash.Sum
		Start, End aoc.Pt
	}{h.Elevations.Hash(), h.Start, h.End}
	return deephash.Hash(&v)
}

// String renders the heightmap in its input format.
func (h *Heightmap) String() string {
	return h.Elevations.Render(func(p aoc.Pt, e int) rune {
		switch p {
		case h.Start:
			return 'S'
		case h.End:
			return 'E'
		}
		return rune('a' + e)
	})
}
