package rematch

import "github.com/coregx/rematch/engine"

// Span is a half-open byte range [Start, End) into the text that produced
// it. A Span is only meaningful for that exact text.
//
// Example:
//
//	m := re.FindMatch("age: 42")
//	s := m.Span()
//	println(s.Start, s.End) // 5 7
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Group is the outcome of one capture slot of a match.
//
// Matched is false when the capturing subpattern did not take part in the
// match, for example an alternative that was not taken or a group under a
// quantifier that repeated zero times. Span is then the zero Span and carries
// no position. A group that matched the empty string has Matched set and an
// empty Span.
type Group struct {
	Span    Span
	Matched bool
}

// Match is one match of a Regex against a text: the whole match plus every
// capture group of the pattern.
//
// A Match is immutable. Group 0 is the whole match; groups 1 through
// NumGroups are the pattern's capture groups, numbered by the engine. The
// RE2-family engines number groups by opening parenthesis. Backtrack numbers
// unnamed groups first and named groups after them, so in (?<y>\d+)-(\d+)
// group 1 is the unnamed one and y is group 2; use Named to stay
// independent of the engine. Every Match produced by the same Regex has the
// same NumGroups, whichever groups participated.
type Match struct {
	text   string
	groups []Group
	names  map[string]int
}

// newMatch adapts an engine match. Slots the engine did not report, or
// reported as -1, become groups that did not participate, so the group count
// always equals numGroups+1.
func newMatch(text string, raw engine.RawMatch, numGroups int, names map[string]int) *Match {
	groups := make([]Group, numGroups+1)
	for i := range groups {
		start, end, ok := raw.Group(i)
		if !ok {
			continue
		}
		groups[i] = Group{Span: Span{Start: start, End: end}, Matched: true}
	}
	return &Match{text: text, groups: groups, names: names}
}

// Span returns the span of the whole match.
func (m *Match) Span() Span {
	return m.groups[0].Span
}

// Start returns the byte offset where the match starts.
func (m *Match) Start() int {
	return m.groups[0].Span.Start
}

// End returns the byte offset just past the end of the match.
func (m *Match) End() int {
	return m.groups[0].Span.End
}

// String returns the matched text.
func (m *Match) String() string {
	s := m.groups[0].Span
	return m.text[s.Start:s.End]
}

// Text returns the whole text the match was found in.
func (m *Match) Text() string {
	return m.text
}

// NumGroups returns the number of capture groups, not counting group 0.
func (m *Match) NumGroups() int {
	return len(m.groups) - 1
}

// Group returns the span of group i and whether it participated in the
// match. Group 0 is the whole match. Indices out of range report false.
//
// Example:
//
//	re := rematch.MustCompile(`a(z)?(c)?`)
//	m := re.FindMatch("ac")
//	_, ok := m.Group(1) // ok == false: (z)? did not participate
//	s, ok := m.Group(2) // s == Span{1, 2}, ok == true
func (m *Match) Group(i int) (Span, bool) {
	if i < 0 || i >= len(m.groups) {
		return Span{}, false
	}
	g := m.groups[i]
	return g.Span, g.Matched
}

// GroupString returns the text of group i and whether it participated.
func (m *Match) GroupString(i int) (string, bool) {
	s, ok := m.Group(i)
	if !ok {
		return "", false
	}
	return m.text[s.Start:s.End], true
}

// Named returns the span of the group called name. Unknown names report
// false, the same as a group that did not participate.
//
// Example:
//
//	re := rematch.MustCompile(`(?<year>\d{4})-(?<month>\d{2})`)
//	m := re.FindMatch("2019-04")
//	year, _ := m.NamedString("year") // "2019"
func (m *Match) Named(name string) (Span, bool) {
	i, ok := m.names[name]
	if !ok {
		return Span{}, false
	}
	return m.Group(i)
}

// NamedString returns the text of the group called name.
func (m *Match) NamedString(name string) (string, bool) {
	i, ok := m.names[name]
	if !ok {
		return "", false
	}
	return m.GroupString(i)
}

// Groups returns a copy of all groups, group 0 first.
func (m *Match) Groups() []Group {
	out := make([]Group, len(m.groups))
	copy(out, m.groups)
	return out
}

// Values returns the text of every group, group 0 first. Groups that did not
// participate are "". Use Group or Groups to tell them apart from groups that
// matched the empty string.
func (m *Match) Values() []string {
	out := make([]string, len(m.groups))
	for i, g := range m.groups {
		if g.Matched {
			out[i] = m.text[g.Span.Start:g.Span.End]
		}
	}
	return out
}
