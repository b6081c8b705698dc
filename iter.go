package rematch

import (
	"unicode/utf8"

	"github.com/coregx/rematch/engine"
)

// scanner produces successive non-overlapping raw matches.
//
// After a non-empty match the next search starts at its end. After an empty
// match it starts one rune further; an empty match at the end of the text is
// the last one. Every step therefore moves forward and the scan terminates
// for any pattern, including ones that match the empty string everywhere.
type scanner struct {
	search engine.Searcher
	text   string
	pos    int
	done   bool
}

func (r *Regex) scan(text string, from int) *scanner {
	return &scanner{search: r.prog.Prepare(text), text: text, pos: from}
}

func (s *scanner) next() (engine.RawMatch, bool) {
	if s.done {
		return engine.RawMatch{}, false
	}
	raw, ok := s.search.FindAt(s.pos)
	if !ok {
		s.done = true
		return engine.RawMatch{}, false
	}

	start, end := raw.Start(), raw.End()
	switch {
	case end > start:
		s.pos = end
	case end >= len(s.text):
		s.done = true
	default:
		_, width := utf8.DecodeRuneInString(s.text[end:])
		s.pos = end + width
	}
	return raw, true
}

// Iter is a lazy, forward-only cursor over the matches of a Regex in one
// text. It yields the same matches as FindAllMatches, one at a time.
//
// An Iter is not restartable and not safe for concurrent use. Once Next
// returns false it keeps returning false.
//
// Example:
//
//	re := rematch.MustCompile(`[a-zA-Z]+m\b`)
//	it := re.Iter("Lorem ipsum dolor sit amet")
//	for it.Next() {
//	    fmt.Println(it.Match()) // "Lorem", then "ipsum"
//	}
type Iter struct {
	re  *Regex
	sc  *scanner
	cur *Match
}

// Next advances to the next match and reports whether there is one.
func (it *Iter) Next() bool {
	raw, ok := it.sc.next()
	if !ok {
		it.cur = nil
		return false
	}
	it.cur = newMatch(it.sc.text, raw, it.re.numGroups, it.re.names)
	return true
}

// Match returns the current match. It is nil before the first call to Next
// and after Next has returned false.
func (it *Iter) Match() *Match {
	return it.cur
}

// Offset returns the byte offset the next search will start from.
func (it *Iter) Offset() int {
	return it.sc.pos
}
