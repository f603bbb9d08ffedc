package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hillclimb/aoc"
)

func TestSamples(t *testing.T) {
	var buf bytes.Buffer
	r := &aoc.Runner{
		Year:    2022,
		Source:  source,
		Solver:  &solver{},
		Options: aoc.Options{OnlySample: true},
		Out:     &buf,
	}
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v\n%s", err, buf.String())
	}
	out := buf.String()
	for _, want := range []string{
		"part 1 sample: 31 ✅",
		"part 2 sample: 29 ✅",
		"part 2brute sample: 29 ✅",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugRoute(t *testing.T) {
	var buf bytes.Buffer
	r := &aoc.Runner{
		Year:    2022,
		Source:  source,
		Solver:  &solver{},
		Options: aoc.Options{Day: 12, Part: "1", OnlySample: true, Debug: true},
		Out:     &buf,
	}
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	// Running line, then the five rows of the drawn route.
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 7 {
		t.Fatalf("debug output too short:\n%s", buf.String())
	}
	route := strings.Join(lines[1:6], "\n")
	if c := route[0]; c != 'v' && c != '>' {
		t.Errorf("route does not leave S: %q", c)
	}
	if strings.Count(route, "E") != 1 {
		t.Errorf("route does not reach E:\n%s", route)
	}
	if got := len(route) - strings.Count(route, ".") - strings.Count(route, "\n"); got != 32 {
		t.Errorf("route marks %d cells, want 32:\n%s", got, route)
	}
}
