// Package rematch provides a structured match API over pluggable regular
// expression engines.
//
// rematch does not match text itself. A pattern is compiled by a delegate
// engine (see the engine package), and rematch builds on the engine's single
// "find the leftmost match at or after an offset" operation:
//   - a match model with a whole match, ordered capture groups that may be
//     absent (not a sentinel) and named group lookup
//   - non-overlapping scanning, eager (FindAllMatches) or lazy (Iter)
//   - substitution by template ($1, ${name}) or by callback
//
// Basic usage:
//
//	re, err := rematch.Compile(`(\d+)\^(\d+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range re.FindAllMatches("16^32=2^128") {
//	    exp, _ := m.GroupString(2)
//	    fmt.Println(m, exp) // "16^32 32", then "2^128 128"
//	}
//
//	out := re.ReplaceAll("2^10", "pow($1, $2)") // "pow(2, 10)"
//
// Engines:
//   - Backtrack (default): dlclark/regexp2, backreferences and lookaround
//   - Coregex: coregx/coregex, RE2 syntax, linear time
//   - RE2: wasilibs/go-re2, RE2 syntax, linear time
//   - Literal: Aho-Corasick over fixed strings
//
// All offsets are byte offsets into the searched string, so a Span can be
// used to slice it directly.
//
// Non-overlapping semantics:
//
// After a match, the next search starts at its end. After an empty match it
// starts one rune further. Unlike the stdlib regexp package, an empty match
// right after a non-empty one is reported: `a*` over "aaa" yields "aaa" at
// [0,3] and "" at [3,3].
package rematch

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/rematch/engine"
	"github.com/coregx/rematch/engine/backtrack"
	"github.com/coregx/rematch/engine/linear"
	"github.com/coregx/rematch/engine/literal"
)

// Regex is a compiled pattern bound to a delegate engine.
//
// A Regex is immutable and safe for concurrent use by multiple goroutines.
// Each scan prepares its own engine state.
type Regex struct {
	prog      engine.Program
	pattern   string
	config    Config
	numGroups int
	names     map[string]int
}

// Compile compiles a pattern with the default configuration (Backtrack
// engine, no options).
//
// Example:
//
//	re, err := rematch.Compile(`(abc|def)=\1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var date = rematch.MustCompile(`(?<year>\d{4})-(?<month>\d{2})-(?<day>\d{2})`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with the engine and options of config.
//
// It returns a *ConfigError for an invalid config and a *CompileError when
// the engine rejects the pattern or an option.
//
// Example:
//
//	config := rematch.DefaultConfig()
//	config.Engine = rematch.Coregex
//	config.Options = rematch.IgnoreCase
//	re, err := rematch.CompileWithConfig(`(go)+`, config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := compileProgram(pattern, config)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Engine: config.Engine, Err: err}
	}
	return newRegex(prog, pattern, config), nil
}

// CompileLiterals returns a Regex matching any of words literally, using the
// Literal engine. Only IgnoreCase has an effect.
//
// Example:
//
//	re, err := rematch.CompileLiterals([]string{"error", "fatal"}, rematch.IgnoreCase)
//	n := re.Count("ERROR: x\nfatal: y") // 2
func CompileLiterals(words []string, opts Options) (*Regex, error) {
	config := Config{Engine: Literal, Options: opts}
	pattern := strings.Join(words, "|")
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := literal.Compile(words, opts)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Engine: Literal, Err: err}
	}
	return newRegex(prog, pattern, config), nil
}

func compileProgram(pattern string, config Config) (engine.Program, error) {
	switch config.Engine {
	case Coregex:
		p, err := linear.Coregex(pattern, config.Options)
		if err != nil {
			return nil, err
		}
		return p, nil
	case RE2:
		p, err := linear.RE2(pattern, config.Options)
		if err != nil {
			return nil, err
		}
		return p, nil
	case Literal:
		p, err := literal.Compile([]string{pattern}, config.Options)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		p, err := backtrack.Compile(pattern, config.Options)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func newRegex(prog engine.Program, pattern string, config Config) *Regex {
	return &Regex{
		prog:      prog,
		pattern:   pattern,
		config:    config,
		numGroups: prog.NumGroups(),
		names:     prog.GroupNames(),
	}
}

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside the argument text; the returned string is a pattern
// matching the literal text in every engine.
//
// Example:
//
//	escaped := rematch.QuoteMeta("1.5+2")
//	// escaped = `1\.5\+2`
func QuoteMeta(s string) string {
	// Special characters that need escaping in regex
	const special = `\.+*?()|[]{}^$#`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// Config returns the configuration the Regex was compiled with.
func (r *Regex) Config() Config {
	return r.config
}

// NumGroups returns the number of capture groups, not counting the whole
// match. Every Match of r has exactly this many groups.
//
// Example:
//
//	re := rematch.MustCompile(`(?:abc){3}`)
//	println(re.NumGroups()) // 0
func (r *Regex) NumGroups() int {
	return r.numGroups
}

// GroupNames returns a copy of the name to index table of the named groups.
func (r *Regex) GroupNames() map[string]int {
	out := make(map[string]int, len(r.names))
	for name, i := range r.names {
		out[name] = i
	}
	return out
}

// GroupIndex returns the index of the group called name, or -1.
func (r *Regex) GroupIndex(name string) int {
	if i, ok := r.names[name]; ok {
		return i
	}
	return -1
}

// MatchString reports whether text contains any match. It stops at the
// first match.
//
// Example:
//
//	re := rematch.MustCompile(`(abc|def)=\1`)
//	re.MatchString("abc=abc") // true
//	re.MatchString("abc=def") // false
func (r *Regex) MatchString(text string) bool {
	_, ok := r.prog.Prepare(text).FindAt(0)
	return ok
}

// FindMatch returns the leftmost match in text, or nil.
//
// Example:
//
//	re := rematch.MustCompile(`a(z)?(c)?`)
//	m := re.FindMatch("a")
//	println(m.String()) // "a"
//	_, ok := m.Group(1) // false
func (r *Regex) FindMatch(text string) *Match {
	raw, ok := r.prog.Prepare(text).FindAt(0)
	if !ok {
		return nil
	}
	return newMatch(text, raw, r.numGroups, r.names)
}

// FindMatchAt returns the first match starting at or after the byte offset
// from, or nil. from == len(text) is valid. An offset outside [0, len(text)]
// or inside a multi-byte rune returns an *IndexError.
//
// Example:
//
//	re := rematch.MustCompile(`[a-z]+m\b`)
//	first := re.FindMatch("lorem ipsum")
//	next, _ := re.FindMatchAt("lorem ipsum", first.End()) // "ipsum"
func (r *Regex) FindMatchAt(text string, from int) (*Match, error) {
	if err := checkOffset(text, from); err != nil {
		return nil, err
	}
	raw, ok := r.prog.Prepare(text).FindAt(from)
	if !ok {
		return nil, nil
	}
	return newMatch(text, raw, r.numGroups, r.names), nil
}

// FindAllMatches returns every successive non-overlapping match in text, or
// nil if there is none. It is the same sequence an Iter over text yields.
//
// Example:
//
//	re := rematch.MustCompile(`(aa)`)
//	ms := re.FindAllMatches("aaaa")
//	println(len(ms)) // 2
func (r *Regex) FindAllMatches(text string) []*Match {
	return r.findAll(text, 0)
}

// FindAllMatchesAt is like FindAllMatches but starts scanning at the byte
// offset from. It validates from exactly as FindMatchAt does.
func (r *Regex) FindAllMatchesAt(text string, from int) ([]*Match, error) {
	if err := checkOffset(text, from); err != nil {
		return nil, err
	}
	return r.findAll(text, from), nil
}

func (r *Regex) findAll(text string, from int) []*Match {
	var out []*Match
	sc := r.scan(text, from)
	for {
		raw, ok := sc.next()
		if !ok {
			return out
		}
		out = append(out, newMatch(text, raw, r.numGroups, r.names))
	}
}

// Iter returns a lazy cursor over the matches in text.
func (r *Regex) Iter(text string) *Iter {
	return &Iter{re: r, sc: r.scan(text, 0)}
}

// IterAt returns a lazy cursor over the matches in text starting at the byte
// offset from. It validates from exactly as FindMatchAt does.
func (r *Regex) IterAt(text string, from int) (*Iter, error) {
	if err := checkOffset(text, from); err != nil {
		return nil, err
	}
	return &Iter{re: r, sc: r.scan(text, from)}, nil
}

// Count returns the number of non-overlapping matches in text. It scans like
// FindAllMatches without building Match values, so the result always equals
// len(r.FindAllMatches(text)).
//
// Example:
//
//	re := rematch.MustCompile(`a*`)
//	println(re.Count("bbb")) // 4
func (r *Regex) Count(text string) int {
	return r.count(text, 0)
}

// CountAt is like Count but starts scanning at the byte offset from. It
// validates from exactly as FindMatchAt does.
func (r *Regex) CountAt(text string, from int) (int, error) {
	if err := checkOffset(text, from); err != nil {
		return 0, err
	}
	return r.count(text, from), nil
}

func (r *Regex) count(text string, from int) int {
	n := 0
	sc := r.scan(text, from)
	for {
		if _, ok := sc.next(); !ok {
			return n
		}
		n++
	}
}

// Split slices text into the substrings between matches.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
//
// As with the stdlib regexp package, an empty match at the start of text
// does not produce a leading empty substring, an empty match right after
// another match is not a separator, and no empty substring follows a match
// that reaches the end of text.
//
// Example:
//
//	re := rematch.MustCompile(`\s*,\s*`)
//	parts := re.Split("a , b,c", -1)
//	// parts = ["a", "b", "c"]
func (r *Regex) Split(text string, n int) []string {
	if n == 0 {
		return nil
	}
	if text == "" {
		return []string{""}
	}

	var out []string
	sc := r.scan(text, 0)
	beg, end := 0, 0
	prevEnd := -1
	for n < 0 || len(out) < n-1 {
		raw, ok := sc.next()
		if !ok {
			break
		}
		// An empty match touching the previous match splits nothing.
		if raw.Start() == raw.End() && raw.Start() == prevEnd {
			continue
		}
		prevEnd = raw.End()
		end = raw.Start()
		if raw.End() != 0 {
			out = append(out, text[beg:end])
		}
		beg = raw.End()
	}
	if end != len(text) {
		out = append(out, text[beg:])
	}
	return out
}

func checkOffset(text string, from int) error {
	if from < 0 || from > len(text) {
		return &IndexError{Offset: from, Len: len(text)}
	}
	if !onRuneBoundary(text, from) {
		return &IndexError{Offset: from, Len: len(text)}
	}
	return nil
}

// onRuneBoundary reports whether i starts a rune of s the way range over s
// splits it, invalid bytes counting as one rune each.
func onRuneBoundary(s string, i int) bool {
	if i == 0 || i == len(s) || utf8.RuneStart(s[i]) {
		return true
	}
	// s[i] is a continuation byte. It is a boundary unless a valid
	// sequence starting at most 3 bytes back covers it.
	for j := i - 1; j >= 0 && j >= i-utf8.UTFMax+1; j-- {
		if !utf8.RuneStart(s[j]) {
			continue
		}
		r, size := utf8.DecodeRuneInString(s[j:])
		if r == utf8.RuneError && size == 1 {
			return true
		}
		return j+size <= i
	}
	return true
}
