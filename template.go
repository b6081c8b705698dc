package rematch

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/rematch/engine"
)

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segGroup
)

// segment is one piece of a parsed template: literal text or a group
// reference. A group of -1 names an unknown group and expands to "".
type segment struct {
	kind    segmentKind
	literal string
	group   int
}

// Template is a replacement string parsed against the groups of a Regex.
//
// Syntax:
//   - $$ is a literal $.
//   - $n refers to group n. Digits are consumed while the number is still a
//     group of the Regex, so with one group "$1o" is group 1 followed by
//     "o". $0 is the whole match.
//   - ${n} refers to group n; ${name} and $name refer to named groups.
//     A name is a letter or _ followed by letters, digits or _.
//   - Any other $, including an unclosed ${, is literal.
//
// References to groups that do not exist or did not participate in the
// match expand to the empty string, so expansion never fails.
//
// A Template is immutable and safe for concurrent use.
type Template struct {
	src  string
	segs []segment
}

// Template parses s against the groups of r.
//
// Example:
//
//	re := rematch.MustCompile(`(?<first>\w+) (?<last>\w+)`)
//	t := re.Template("${last}, $first")
//	out := re.ReplaceAllTemplate("Ada Lovelace", t) // "Lovelace, Ada"
func (r *Regex) Template(s string) *Template {
	return parseTemplate(s, r.numGroups, r.names)
}

// String returns the source of the template.
func (t *Template) String() string {
	return t.src
}

// Expand returns the template expanded for m.
func (t *Template) Expand(m *Match) string {
	var buf []byte
	for _, seg := range t.segs {
		switch seg.kind {
		case segLiteral:
			buf = append(buf, seg.literal...)
		case segGroup:
			if s, ok := m.GroupString(seg.group); ok {
				buf = append(buf, s...)
			}
		}
	}
	return string(buf)
}

// appendExpansion appends the expansion for a raw match of text to dst.
func (t *Template) appendExpansion(dst []byte, text string, raw engine.RawMatch) []byte {
	for _, seg := range t.segs {
		switch seg.kind {
		case segLiteral:
			dst = append(dst, seg.literal...)
		case segGroup:
			if start, end, ok := raw.Group(seg.group); ok {
				dst = append(dst, text[start:end]...)
			}
		}
	}
	return dst
}

func parseTemplate(s string, numGroups int, names map[string]int) *Template {
	t := &Template{src: s}
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			t.segs = append(t.segs, segment{kind: segLiteral, literal: string(lit)})
			lit = lit[:0]
		}
	}
	ref := func(group int) {
		flush()
		t.segs = append(t.segs, segment{kind: segGroup, group: group})
	}

	i := 0
	for i < len(s) {
		if s[i] != '$' || i+1 >= len(s) {
			lit = append(lit, s[i])
			i++
			continue
		}

		next := s[i+1]
		switch {
		case next == '$':
			lit = append(lit, '$')
			i += 2

		case isDigit(next):
			group, width := parseGroupNumber(s[i+1:], numGroups)
			ref(group)
			i += 1 + width

		case next == '{':
			closeIdx := strings.IndexByte(s[i+2:], '}')
			if closeIdx < 0 {
				lit = append(lit, '$')
				i++
				continue
			}
			group, ok := parseBracedRef(s[i+2:i+2+closeIdx], names)
			if !ok {
				lit = append(lit, '$')
				i++
				continue
			}
			ref(group)
			i += 3 + closeIdx

		default:
			r, _ := utf8.DecodeRuneInString(s[i+1:])
			if !isNameStart(r) {
				lit = append(lit, '$')
				i++
				continue
			}
			name := scanName(s[i+1:])
			ref(lookupName(name, names))
			i += 1 + len(name)
		}
	}
	flush()
	return t
}

// parseGroupNumber reads the group number at the start of s, which begins
// with a digit. It takes the longest run of digits that still names a group;
// a first digit that is already out of range is returned alone.
func parseGroupNumber(s string, numGroups int) (group, width int) {
	group = int(s[0] - '0')
	width = 1
	if group == 0 {
		return 0, 1
	}
	for width < len(s) && isDigit(s[width]) {
		n := group*10 + int(s[width]-'0')
		if n > numGroups {
			break
		}
		group = n
		width++
	}
	return group, width
}

// parseBracedRef resolves the content of ${...}. It reports false when the
// content is neither a number nor a name, leaving the text literal.
func parseBracedRef(content string, names map[string]int) (int, bool) {
	if content == "" {
		return 0, false
	}
	if isDigit(content[0]) {
		for i := 0; i < len(content); i++ {
			if !isDigit(content[i]) {
				return 0, false
			}
		}
		n, err := strconv.Atoi(content)
		if err != nil {
			return -1, true
		}
		return n, true
	}
	if scanName(content) != content {
		return 0, false
	}
	return lookupName(content, names), true
}

func lookupName(name string, names map[string]int) int {
	if i, ok := names[name]; ok {
		return i
	}
	return -1
}

// scanName returns the longest name at the start of s.
func scanName(s string) string {
	for i, r := range s {
		if i == 0 && !isNameStart(r) {
			return ""
		}
		if !isNameContinue(r) {
			return s[:i]
		}
	}
	return s
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
