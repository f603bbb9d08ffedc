package aoc

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Grid[byte]
	}{
		{"empty", "", nil},
		{"only newline", "\n", nil},
		{"trailing newline", "ab\ncd\n", Grid[byte]{[]byte("ab"), []byte("cd")}},
		{"no trailing newline", "ab\ncd", Grid[byte]{[]byte("ab"), []byte("cd")}},
		{"crlf", "ab\r\ncd\r\n", Grid[byte]{[]byte("ab"), []byte("cd")}},
		{"ragged kept", "abc\nd\n", Grid[byte]{[]byte("abc"), []byte("d")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseGrid(tt.in)); diff != "" {
				t.Errorf("ParseGrid(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestPuzzleDebugf(t *testing.T) {
	tests := []struct {
		name   string
		sample bool
		debug  bool
		want   string
	}{
		{"debug sample", true, true, "route 3\n"},
		{"debug real input", false, true, ""},
		{"sample without debug", true, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := &Puzzle{SampleMode: tt.sample, debug: tt.debug, logOut: &buf}
			if got, want := p.Debugging(), tt.want != ""; got != want {
				t.Errorf("Debugging() = %v, want %v", got, want)
			}
			p.Debugf("route %d", 3)
			if got := buf.String(); got != tt.want {
				t.Errorf("Debugf wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPuzzleGrid(t *testing.T) {
	p := &Puzzle{input: []byte("Sab\nbcE\n")}
	want := Grid[byte]{[]byte("Sab"), []byte("bcE")}
	if diff := cmp.Diff(want, p.Grid()); diff != "" {
		t.Errorf("Grid() mismatch (-want +got):\n%s", diff)
	}
}

func TestParallel(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	got := Parallel(in, func(v int) int { return v * v })
	for i, v := range got {
		if v != i*i {
			t.Fatalf("Parallel()[%d] = %d, want %d", i, v, i*i)
		}
	}
	if got := Parallel(nil, func(v int) int { return v }); len(got) != 0 {
		t.Errorf("Parallel(nil) = %v, want empty", got)
	}
}

func TestMustGet(t *testing.T) {
	if got := MustGet(7, nil); got != 7 {
		t.Errorf("MustGet(7, nil) = %d, want 7", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustGet with an error did not panic")
		}
	}()
	MustGet(0, ErrSampleMismatch)
}
