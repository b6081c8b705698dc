// Package literal provides a delegate engine that matches a fixed set of
// strings with an Aho-Corasick automaton (github.com/coregx/ahocorasick).
//
// The pattern has no syntax: every word is matched byte for byte and there
// are no capture groups. IgnoreCase folds ASCII letters only, which keeps
// byte offsets of the folded text identical to the original. The other
// options have nothing to act on and are accepted without effect.
package literal

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rematch/engine"
)

// ErrEmptyWord is returned when a word set is empty or contains "".
var ErrEmptyWord = errors.New("literal: empty word")

// Program is a compiled set of words.
type Program struct {
	auto     *ahocorasick.Automaton
	fold     bool
	minWord  int
	numWords int
}

// Compile builds an automaton matching any of words.
//
// Example:
//
//	prog, err := literal.Compile([]string{"error", "warning"}, engine.IgnoreCase)
func Compile(words []string, opts engine.Options) (*Program, error) {
	if !opts.Valid() {
		return nil, fmt.Errorf("%w: %v", engine.ErrUnsupportedOption, opts)
	}
	if len(words) == 0 {
		return nil, ErrEmptyWord
	}

	fold := opts.Has(engine.IgnoreCase)
	builder := ahocorasick.NewBuilder()
	minWord := -1
	for _, w := range words {
		if w == "" {
			return nil, ErrEmptyWord
		}
		b := []byte(w)
		if fold {
			foldASCII(b)
		}
		builder.AddPattern(b)
		if minWord < 0 || len(b) < minWord {
			minWord = len(b)
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Program{auto: auto, fold: fold, minWord: minWord, numWords: len(words)}, nil
}

// NumWords returns the number of words the Program was built from.
func (p *Program) NumWords() int {
	return p.numWords
}

// NumGroups implements engine.Program. Literal sets never capture.
func (p *Program) NumGroups() int {
	return 0
}

// GroupNames implements engine.Program.
func (p *Program) GroupNames() map[string]int {
	return nil
}

// Prepare implements engine.Program.
func (p *Program) Prepare(text string) engine.Searcher {
	haystack := []byte(text)
	if p.fold {
		foldASCII(haystack)
	}
	return &searcher{prog: p, haystack: haystack}
}

type searcher struct {
	prog     *Program
	haystack []byte
}

func (s *searcher) FindAt(from int) (engine.RawMatch, bool) {
	// Words are non-empty, so nothing can start in the last minWord-1 bytes.
	if len(s.haystack)-from < s.prog.minWord {
		return engine.RawMatch{}, false
	}
	m := s.prog.auto.Find(s.haystack, from)
	if m == nil {
		return engine.RawMatch{}, false
	}
	return engine.RawMatch{Slots: []int{m.Start, m.End}}, true
}

func foldASCII(b []byte) {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
}
