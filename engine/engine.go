// Package engine defines the capability rematch consumes from a regular
// expression engine.
//
// rematch never matches text itself. A delegate engine compiles a pattern
// into a Program, and a Program finds the leftmost match at or after a given
// offset. Everything above that (iteration, substitution, the match model)
// is built on these two operations, so any engine that can report capture
// slots as byte offsets can be plugged in.
//
// Implementations live in the subpackages:
//   - backtrack: dlclark/regexp2, Perl/.NET syntax with backreferences
//   - linear: coregex and go-re2, RE2 syntax in linear time
//   - literal: Aho-Corasick over a fixed set of strings
package engine

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnsupportedOption is returned by engines that cannot honor one of the
// requested Options.
var ErrUnsupportedOption = errors.New("option not supported by engine")

// Options is a set of compile-time matching options. Their exact semantics
// are those of the delegate engine.
type Options uint32

const (
	// IgnoreCase matches letters case-insensitively.
	IgnoreCase Options = 1 << iota

	// Multiline makes ^ and $ match at line boundaries.
	Multiline

	// DotAll lets . match a newline.
	DotAll

	// IgnoreWhitespace ignores unescaped whitespace in the pattern and
	// enables # comments.
	IgnoreWhitespace

	// ExplicitCapture makes plain parentheses non-capturing; only named
	// groups capture.
	ExplicitCapture

	// None is the empty option set.
	None Options = 0

	allOptions = IgnoreCase | Multiline | DotAll | IgnoreWhitespace | ExplicitCapture
)

var optionNames = []struct {
	opt  Options
	name string
}{
	{IgnoreCase, "IgnoreCase"},
	{Multiline, "Multiline"},
	{DotAll, "DotAll"},
	{IgnoreWhitespace, "IgnoreWhitespace"},
	{ExplicitCapture, "ExplicitCapture"},
}

// Has reports whether all options in o are set.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// Valid reports whether opts contains only known option bits.
func (opts Options) Valid() bool {
	return opts&^allOptions == 0
}

// String returns the option names joined by "|", or "None".
func (opts Options) String() string {
	if opts == None {
		return "None"
	}
	var parts []string
	for _, on := range optionNames {
		if opts.Has(on.opt) {
			parts = append(parts, on.name)
		}
	}
	if rest := opts &^ allOptions; rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// Program is a compiled pattern. A Program is immutable and safe for
// concurrent use.
type Program interface {
	// NumGroups returns the number of capture groups, not counting the
	// whole match. It is the same for every match the Program produces.
	NumGroups() int

	// GroupNames maps group names to group indices. It returns nil when the
	// pattern has no named groups. The map must not be modified.
	GroupNames() map[string]int

	// Prepare binds the Program to text. Engines that search a different
	// representation of the text (runes, bytes) convert it here, once.
	Prepare(text string) Searcher
}

// Searcher finds matches in the text a Program was prepared with.
//
// A Searcher is not safe for concurrent use.
type Searcher interface {
	// FindAt returns the leftmost match that starts at or after the byte
	// offset from. from is on a rune boundary and 0 <= from <= len(text).
	FindAt(from int) (RawMatch, bool)
}

// RawMatch is an engine-native match: one pair of byte offsets per capture
// slot, slot 0 being the whole match. A pair of -1 marks a group that did
// not participate in the match.
type RawMatch struct {
	Slots []int
}

// NumSlots returns the number of capture slots, including slot 0.
func (m RawMatch) NumSlots() int {
	return len(m.Slots) / 2
}

// Start returns the start offset of the whole match.
func (m RawMatch) Start() int {
	return m.Slots[0]
}

// End returns the end offset of the whole match.
func (m RawMatch) End() int {
	return m.Slots[1]
}

// Group returns the offsets of slot i and whether the group participated.
func (m RawMatch) Group(i int) (start, end int, ok bool) {
	if i < 0 || 2*i+1 >= len(m.Slots) {
		return 0, 0, false
	}
	start, end = m.Slots[2*i], m.Slots[2*i+1]
	if start < 0 || end < 0 {
		return 0, 0, false
	}
	return start, end, true
}

// Absent returns a RawMatch with n+1 slots, all marked as not participating.
// Engines fill in the slots that did participate.
func Absent(n int) RawMatch {
	slots := make([]int, 2*(n+1))
	for i := range slots {
		slots[i] = -1
	}
	return RawMatch{Slots: slots}
}
