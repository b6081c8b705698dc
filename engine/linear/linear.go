// Package linear provides delegate engines with RE2 syntax and linear-time
// matching: github.com/coregx/coregex and github.com/wasilibs/go-re2.
//
// Coregex searches the whole text from an offset through its meta engine,
// so assertions at the offset (^, \b, \B) see the text to their left.
//
// go-re2 only exposes the stdlib regexp API, which always searches a whole
// string. RE2 assertions look at most one rune to the left, so a search at
// from > 0 runs a second program, (?s:.)(pattern), over the text starting
// one rune before from: the dot consumes that rune and group 1 is the match.
// This gives the same result as a search of the full text from the offset.
//
// Backreferences are not part of RE2 syntax and fail to compile.
package linear

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/coregx/rematch/engine"
	"github.com/wasilibs/go-re2"
)

// ErrEnginePanic reports a delegate that panicked while compiling.
var ErrEnginePanic = errors.New("engine panicked")

// Matcher is the subset of the stdlib regexp API the adapter needs.
// *re2.Regexp and *regexp.Regexp both satisfy it.
type Matcher interface {
	FindStringSubmatchIndex(s string) []int
	SubexpNames() []string
}

// CompileFunc compiles an RE2-syntax expression into a Matcher.
type CompileFunc func(expr string) (Matcher, error)

// Program adapts a stdlib-shaped Matcher to engine.Program.
type Program struct {
	m Matcher
	// context is (?s:.)(expr): the same pattern with one leading rune of
	// left context consumed.
	context   Matcher
	numGroups int
	names     map[string]int
}

// RE2 compiles pattern with go-re2, the RE2 C++ library built to
// WebAssembly.
//
// Example:
//
//	prog, err := linear.RE2(`(\w+)@(\w+)\.com`, engine.IgnoreCase)
func RE2(pattern string, opts engine.Options) (*Program, error) {
	expr, err := withFlags(pattern, opts)
	if err != nil {
		return nil, err
	}
	return New(expr, recoverPanics(compileRE2))
}

func compileRE2(expr string) (Matcher, error) {
	re, err := re2.Compile(expr)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// recoverPanics turns a panic inside compile, such as a trap in the
// WebAssembly runtime, into an error.
func recoverPanics(compile CompileFunc) CompileFunc {
	return func(expr string) (m Matcher, err error) {
		defer func() {
			if r := recover(); r != nil {
				m, err = nil, fmt.Errorf("%w: compiling %q: %v", ErrEnginePanic, expr, r)
			}
		}()
		return compile(expr)
	}
}

// New compiles expr and its left-context form with compile.
func New(expr string, compile CompileFunc) (*Program, error) {
	m, err := compile(expr)
	if err != nil {
		return nil, err
	}
	context, err := compile(`(?s:.)(` + expr + `)`)
	if err != nil {
		return nil, err
	}
	numGroups, names := groupTable(m.SubexpNames())
	return &Program{m: m, context: context, numGroups: numGroups, names: names}, nil
}

// groupTable derives the group count and name table from SubexpNames.
func groupTable(subexp []string) (int, map[string]int) {
	var names map[string]int
	for i, name := range subexp {
		if i == 0 || name == "" {
			continue
		}
		if names == nil {
			names = make(map[string]int)
		}
		// RE2 rejects duplicate names, keep the first one regardless.
		if _, dup := names[name]; !dup {
			names[name] = i
		}
	}
	return len(subexp) - 1, names
}

// withFlags turns options into an inline flag group.
func withFlags(pattern string, opts engine.Options) (string, error) {
	if !opts.Valid() {
		return "", fmt.Errorf("%w: %v", engine.ErrUnsupportedOption, opts)
	}
	if opts.Has(engine.IgnoreWhitespace) {
		return "", fmt.Errorf("%w: %v", engine.ErrUnsupportedOption, engine.IgnoreWhitespace)
	}
	if opts.Has(engine.ExplicitCapture) {
		return "", fmt.Errorf("%w: %v", engine.ErrUnsupportedOption, engine.ExplicitCapture)
	}

	var flags []byte
	if opts.Has(engine.IgnoreCase) {
		flags = append(flags, 'i')
	}
	if opts.Has(engine.Multiline) {
		flags = append(flags, 'm')
	}
	if opts.Has(engine.DotAll) {
		flags = append(flags, 's')
	}
	if len(flags) == 0 {
		return pattern, nil
	}
	return "(?" + string(flags) + ")" + pattern, nil
}

// NumGroups implements engine.Program.
func (p *Program) NumGroups() int {
	return p.numGroups
}

// GroupNames implements engine.Program.
func (p *Program) GroupNames() map[string]int {
	return p.names
}

// Prepare implements engine.Program.
func (p *Program) Prepare(text string) engine.Searcher {
	return &searcher{prog: p, text: text}
}

type searcher struct {
	prog *Program
	text string
}

func (s *searcher) FindAt(from int) (engine.RawMatch, bool) {
	if from == 0 {
		loc := s.prog.m.FindStringSubmatchIndex(s.text)
		if loc == nil {
			return engine.RawMatch{}, false
		}
		return fillSlots(s.prog.numGroups, loc, 0, 0), true
	}

	_, width := utf8.DecodeLastRuneInString(s.text[:from])
	base := from - width
	loc := s.prog.context.FindStringSubmatchIndex(s.text[base:])
	if loc == nil {
		return engine.RawMatch{}, false
	}
	// Slot pairs of the context program are shifted by one: its group 1
	// is the match, group k+1 is group k.
	return fillSlots(s.prog.numGroups, loc, 2, base), true
}

// fillSlots copies the pairs of loc starting at skip into a RawMatch,
// shifting offsets by base. Pairs of -1 stay absent.
func fillSlots(numGroups int, loc []int, skip, base int) engine.RawMatch {
	raw := engine.Absent(numGroups)
	for i := 0; i < len(raw.Slots) && skip+i+1 < len(loc); i += 2 {
		start, end := loc[skip+i], loc[skip+i+1]
		if start < 0 || end < 0 {
			continue
		}
		raw.Slots[i] = start + base
		raw.Slots[i+1] = end + base
	}
	return raw
}
