package aoc

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Options select what a Runner runs.
type Options struct {
	Day        int    // 0 runs every day
	Part       string // "" runs every part
	OnlySample bool
	SkipSample bool
	Debug      bool
}

var flagOpts Options

func init() {
	flag.IntVar(&flagOpts.Day, "day", 0, "day to run")
	flag.StringVar(&flagOpts.Part, "part", "", "part to run")
	flag.BoolVar(&flagOpts.OnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagOpts.SkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagOpts.Debug, "debug", false, "debug mode")
}

var initFlags = sync.OnceFunc(flag.Parse)

// ErrSampleMismatch is returned by Runner.Run when a part gets a sample
// wrong.
var ErrSampleMismatch = errors.New("aoc: wrong answer for sample")

type part struct {
	day    int
	name   string // part suffix, e.g. "2" or "2brute"
	fnName string
	fn     func() any
}

var partRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// parts returns the D{day}p{part} methods of the struct pointed to by slvr,
// ordered by day then part name.
func parts(slvr any) ([]part, error) {
	v := reflect.ValueOf(slvr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("aoc: solver is %T, want pointer to struct", slvr)
	}
	// Methods are bound through the pointer so that each call sees the
	// *Puzzle that Run sets just before it.
	var out []part
	for i := 0; i < v.NumMethod(); i++ {
		name := v.Type().Method(i).Name
		m := partRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("aoc: %s must have signature func() any", name)
		}
		day, _ := strconv.Atoi(m[1])
		out = append(out, part{day: day, name: m[2], fn: fn, fnName: name})
	}
	slices.SortFunc(out, func(a, b part) int {
		if a.day != b.day {
			return a.day - b.day
		}
		return strings.Compare(a.name, b.name)
	})
	return out, nil
}

// Runner runs the parts of a solver against their samples and real inputs.
type Runner struct {
	Year    int
	Source  []byte // solver source carrying the samples
	Solver  any    // pointer to a struct embedding *Puzzle
	Options Options
	Inputs  *Inputs
	Out     io.Writer
}

// Run runs the selected parts, stopping at the first wrong sample or part
// that returns an error.
func (r *Runner) Run() error {
	samples, err := ParseSamples(r.Source)
	if err != nil {
		return err
	}
	all, err := parts(r.Solver)
	if err != nil {
		return err
	}
	field := reflect.ValueOf(r.Solver).Elem().FieldByName("Puzzle")
	if !field.IsValid() {
		return fmt.Errorf("aoc: solver %T does not embed *Puzzle", r.Solver)
	}
	lastDay := 0
	for _, pt := range all {
		if r.Options.Day != 0 && pt.day != r.Options.Day {
			continue
		}
		if r.Options.Part != "" && pt.name != r.Options.Part {
			continue
		}
		if pt.day != lastDay {
			fmt.Fprintln(r.Out, "Running day", pt.day)
			lastDay = pt.day
		}
		p := &Puzzle{debug: r.Options.Debug, logOut: r.Out}
		field.Set(reflect.ValueOf(p))
		if !r.Options.SkipSample {
			s, ok := samples[pt.fnName]
			if !ok {
				return fmt.Errorf("aoc: no sample for %s", pt.fnName)
			}
			p.SampleMode, p.input = true, []byte(s.Input)
			if err := r.runPart(pt, &s); err != nil {
				return err
			}
		}
		if r.Options.OnlySample {
			continue
		}
		in, err := r.Inputs.Load(r.Year, pt.day)
		if err != nil {
			return err
		}
		p.SampleMode, p.input = false, in
		if err := r.runPart(pt, nil); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runPart(pt part, s *Sample) error {
	t0 := time.Now()
	got := pt.fn()
	took := time.Since(t0).Round(time.Microsecond)
	if err, ok := got.(error); ok {
		fmt.Fprintf(r.Out, "part %s: error: %v ❌\n", pt.name, err)
		return fmt.Errorf("%s: %w", pt.fnName, err)
	}
	switch {
	case s == nil:
		fmt.Fprintf(r.Out, "part %s: %v (took %v)\n", pt.name, got, took)
	case fmt.Sprint(got) != s.Want:
		fmt.Fprintf(r.Out, "part %s: %v ❌; want %v\n", pt.name, got, s.Want)
		return fmt.Errorf("%w: %s = %v, want %v", ErrSampleMismatch, pt.fnName, got, s.Want)
	default:
		fmt.Fprintf(r.Out, "part %s sample: %v ✅ (%v)\n", pt.name, got, took)
	}
	return nil
}

// Run runs slvr with options from the command line and exits on failure.
// src is the solver's own source, which carries the samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	r := &Runner{
		Year:    year,
		Source:  src,
		Solver:  slvr,
		Options: flagOpts,
		Inputs:  &Inputs{Dir: "."},
		Out:     os.Stdout,
	}
	if err := r.Run(); err != nil {
		log.Fatal(err)
	}
}
