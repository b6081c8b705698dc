// Package backtrack provides a delegate engine backed by
// github.com/dlclark/regexp2.
//
// regexp2 is a backtracking engine with .NET/Perl syntax: backreferences,
// lookaround, atomic groups and named groups all work. It is the default
// engine of rematch.
//
// regexp2 addresses text by rune. The Searcher converts the text to runes
// once and translates every offset through internal/conv, so callers only
// ever see byte offsets.
package backtrack

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/coregx/rematch/engine"
	"github.com/coregx/rematch/internal/conv"
	"github.com/dlclark/regexp2"
)

// Program is a compiled regexp2 pattern.
type Program struct {
	re *regexp2.Regexp
	// numbers holds regexp2's group numbers in ascending order; slot i of a
	// RawMatch corresponds to numbers[i].
	numbers []int
	names   map[string]int
}

// Compile compiles pattern with the given options.
//
// Example:
//
//	prog, err := backtrack.Compile(`(abc|def)=\1`, engine.None)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string, opts engine.Options) (*Program, error) {
	if !opts.Valid() {
		return nil, fmt.Errorf("%w: %v", engine.ErrUnsupportedOption, opts)
	}
	re, err := regexp2.Compile(pattern, regexpOptions(opts))
	if err != nil {
		return nil, err
	}

	numbers := slices.Clone(re.GetGroupNumbers())
	slices.Sort(numbers)
	slot := make(map[int]int, len(numbers))
	for i, n := range numbers {
		slot[n] = i
	}

	var names map[string]int
	for _, name := range re.GetGroupNames() {
		if isNumber(name) {
			continue
		}
		if names == nil {
			names = make(map[string]int)
		}
		names[name] = slot[re.GroupNumberFromName(name)]
	}

	return &Program{re: re, numbers: numbers, names: names}, nil
}

func regexpOptions(opts engine.Options) regexp2.RegexOptions {
	ro := regexp2.None
	if opts.Has(engine.IgnoreCase) {
		ro |= regexp2.IgnoreCase
	}
	if opts.Has(engine.Multiline) {
		ro |= regexp2.Multiline
	}
	if opts.Has(engine.DotAll) {
		ro |= regexp2.Singleline
	}
	if opts.Has(engine.IgnoreWhitespace) {
		ro |= regexp2.IgnorePatternWhitespace
	}
	if opts.Has(engine.ExplicitCapture) {
		ro |= regexp2.ExplicitCapture
	}
	return ro
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// NumGroups implements engine.Program.
func (p *Program) NumGroups() int {
	return len(p.numbers) - 1
}

// GroupNames implements engine.Program.
func (p *Program) GroupNames() map[string]int {
	return p.names
}

// Prepare implements engine.Program.
func (p *Program) Prepare(text string) engine.Searcher {
	return &searcher{prog: p, index: conv.NewIndex(text)}
}

type searcher struct {
	prog  *Program
	index *conv.Index
}

func (s *searcher) FindAt(from int) (engine.RawMatch, bool) {
	runes := s.index.Runes()
	m, err := s.prog.re.FindRunesMatchStartingAt(runes, s.index.RuneOffset(from))
	if err != nil {
		// Only a match timeout makes regexp2 fail at runtime, and
		// Program never sets one.
		panic("backtrack: " + err.Error())
	}
	if m == nil {
		return engine.RawMatch{}, false
	}

	raw := engine.Absent(len(s.prog.numbers) - 1)
	raw.Slots[0] = s.index.ByteOffset(m.Index)
	raw.Slots[1] = s.index.ByteOffset(m.Index + m.Length)
	for i := 1; i < len(s.prog.numbers); i++ {
		g := m.GroupByNumber(s.prog.numbers[i])
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		// The group's own Index/Length describe its last capture.
		raw.Slots[2*i] = s.index.ByteOffset(g.Index)
		raw.Slots[2*i+1] = s.index.ByteOffset(g.Index + g.Length)
	}
	return raw, true
}
