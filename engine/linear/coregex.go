package linear

import (
	"github.com/coregx/coregex/meta"
	"github.com/coregx/rematch/engine"
)

// CoregexProgram is a pattern compiled by the coregex meta engine.
type CoregexProgram struct {
	meta      *meta.Engine
	numGroups int
	names     map[string]int
}

// Coregex compiles pattern with github.com/coregx/coregex.
//
// Example:
//
//	prog, err := linear.Coregex(`(?P<key>\w+)=(?P<value>\w+)`, engine.None)
func Coregex(pattern string, opts engine.Options) (*CoregexProgram, error) {
	expr, err := withFlags(pattern, opts)
	if err != nil {
		return nil, err
	}
	e, err := meta.Compile(expr)
	if err != nil {
		return nil, err
	}
	numGroups, names := groupTable(e.SubexpNames())
	return &CoregexProgram{meta: e, numGroups: numGroups, names: names}, nil
}

// NumGroups implements engine.Program.
func (p *CoregexProgram) NumGroups() int {
	return p.numGroups
}

// GroupNames implements engine.Program.
func (p *CoregexProgram) GroupNames() map[string]int {
	return p.names
}

// Prepare implements engine.Program. The text is converted to bytes once
// and every search runs over the whole of it.
func (p *CoregexProgram) Prepare(text string) engine.Searcher {
	return &coregexSearcher{prog: p, haystack: []byte(text)}
}

type coregexSearcher struct {
	prog     *CoregexProgram
	haystack []byte
}

func (s *coregexSearcher) FindAt(from int) (engine.RawMatch, bool) {
	m := s.prog.meta.FindSubmatchAt(s.haystack, from)
	if m == nil {
		return engine.RawMatch{}, false
	}
	raw := engine.Absent(s.prog.numGroups)
	for i := 0; i <= s.prog.numGroups && i < m.NumCaptures(); i++ {
		idx := m.GroupIndex(i)
		if len(idx) < 2 || idx[0] < 0 || idx[1] < 0 {
			continue
		}
		raw.Slots[2*i] = idx[0]
		raw.Slots[2*i+1] = idx[1]
	}
	return raw, true
}
