package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
)

// Sample is an example input and the answer a part must give for it.
type Sample struct {
	Input string
	Want  string
}

var wantRx = regexp.MustCompile(`(?s)^\s*want=([^\n]*)\n?(.*)$`)

// parseSample reads a sample out of a single // or /* */ comment.
func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := wantRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	s := Sample{Want: strings.TrimSpace(m[1])}
	if in := strings.TrimLeft(m[2], " \t\n"); strings.TrimSpace(in) != "" {
		s.Input = strings.TrimRight(in, " \t\n") + "\n"
	}
	return s, true
}

// ParseSamples returns the samples in the doc comments of the functions
// declared in src, keyed by function name.
func ParseSamples(src []byte) (map[string]Sample, error) {
	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing solver source: %w", err)
	}
	samples := make(map[string]Sample)
	var last string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			if s.Input == "" {
				s.Input = last
			}
			last = s.Input
			samples[fd.Name.Name] = s
			break
		}
	}
	return samples, nil
}
