package rematch

import "github.com/coregx/rematch/engine"

// appendFunc appends the replacement for one raw match to dst.
type appendFunc func(dst []byte, raw engine.RawMatch) []byte

// replace is the one substitution algorithm behind every ReplaceAll
// variant. Text between matches is copied verbatim, the replacement is
// appended for each match in order, and the tail after the last match is
// copied. With no match src itself is returned.
func (r *Regex) replace(src string, repl appendFunc) string {
	sc := r.scan(src, 0)

	raw, ok := sc.next()
	if !ok {
		return src
	}

	result := make([]byte, 0, len(src))
	lastEnd := 0
	for ok {
		// Append text before match
		result = append(result, src[lastEnd:raw.Start()]...)
		result = repl(result, raw)
		lastEnd = raw.End()
		raw, ok = sc.next()
	}

	// Append remaining text
	result = append(result, src[lastEnd:]...)
	return string(result)
}

// ReplaceAll returns a copy of src with every match replaced by the
// expansion of template. See Template for the $ syntax; references to
// absent or unknown groups expand to "".
//
// Example:
//
//	re := rematch.MustCompile(`(\w+)a\b`)
//	out := re.ReplaceAll("En un lugar de la Mancha", "$1o")
//	// out = "En un lugar de lo Mancho"
func (r *Regex) ReplaceAll(src, template string) string {
	return r.ReplaceAllTemplate(src, r.Template(template))
}

// ReplaceAllTemplate is like ReplaceAll with a template parsed once by
// r.Template, for reuse across calls.
func (r *Regex) ReplaceAllTemplate(src string, t *Template) string {
	return r.replace(src, func(dst []byte, raw engine.RawMatch) []byte {
		return t.appendExpansion(dst, src, raw)
	})
}

// ReplaceAllFunc returns a copy of src in which every match is replaced by
// the return value of repl. repl is called once per match, in match order,
// and its result is inserted as is, without template expansion.
//
// Example:
//
//	re := rematch.MustCompile(`(\w+a)\b`)
//	out := re.ReplaceAllFunc("la Mancha", func(m *rematch.Match) string {
//	    return strings.ToUpper(m.String())
//	})
//	// out = "LA MANCHA"
func (r *Regex) ReplaceAllFunc(src string, repl func(*Match) string) string {
	return r.replace(src, func(dst []byte, raw engine.RawMatch) []byte {
		return append(dst, repl(newMatch(src, raw, r.numGroups, r.names))...)
	})
}

// ReplaceAllLiteral returns a copy of src with every match replaced by repl.
// The replacement is substituted directly, without expanding $ variables.
//
// Example:
//
//	re := rematch.MustCompile(`\d+`)
//	out := re.ReplaceAllLiteral("age: 42", "$1")
//	// out = "age: $1"
func (r *Regex) ReplaceAllLiteral(src, repl string) string {
	return r.replace(src, func(dst []byte, _ engine.RawMatch) []byte {
		return append(dst, repl...)
	})
}
