// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from bradfitz/aoc)
//
// A solver is a struct embedding *Puzzle with one method per part, named
// D{day}p{part} and returning any. Each method's doc comment may carry a
// sample:
//
//	/*
//	want=31
//
//	<sample input>
//	*/
//
// A comment with only "want=N" reuses the previous sample's input.
package aoc

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Puzzle is what a solver sees of the part being run.
type Puzzle struct {
	SampleMode bool

	input  []byte
	debug  bool
	logOut io.Writer
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	return p.input
}

// Grid returns the input as one row per line. A trailing newline and \r\n
// endings are dropped; rows are not checked for equal length.
func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(string(p.input))
}

// Debugging reports whether debug output is wanted: -debug on a sample run.
func (p *Puzzle) Debugging() bool {
	return p.debug && p.SampleMode
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.Debugging() {
		fmt.Fprintf(p.logOut, format+"\n", args...)
	}
}

// ParseGrid splits text into rows of bytes.
func ParseGrid(text string) Grid[byte] {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	g := make(Grid[byte], len(lines))
	for y, line := range lines {
		g[y] = []byte(line)
	}
	return g
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Parallel calls f on every element of in, at most GOMAXPROCS at a time,
// and returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	g.Wait()
	return out
}
