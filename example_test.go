package rematch_test

import (
	"fmt"
	"strings"

	"github.com/coregx/rematch"
)

// ExampleCompile demonstrates compiling a pattern with a backreference.
func ExampleCompile() {
	re, err := rematch.Compile(`(abc|def)=\1`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("abc=abc"))
	fmt.Println(re.MatchString("abc=def"))
	// Output:
	// true
	// false
}

// ExampleRegex_FindMatch shows the whole match and its groups.
func ExampleRegex_FindMatch() {
	re := rematch.MustCompile(`(\d+)\^(\d+)`)
	m := re.FindMatch("to the 16^32")

	fmt.Println(m, m.Span())
	fmt.Printf("%q\n", m.Values())
	// Output:
	// 16^32 {7 12}
	// ["16^32" "16" "32"]
}

// ExampleMatch_Group shows groups that did not participate in a match.
func ExampleMatch_Group() {
	re := rematch.MustCompile(`a(z)?(c)?`)
	m := re.FindMatch("ac")

	for i := 0; i <= m.NumGroups(); i++ {
		s, ok := m.Group(i)
		fmt.Println(i, s, ok)
	}
	// Output:
	// 0 {0 2} true
	// 1 {0 0} false
	// 2 {1 2} true
}

// ExampleMatch_NamedString demonstrates named capture groups.
func ExampleMatch_NamedString() {
	re := rematch.MustCompile(`(?<year>\d{4})-(?<month>\d{2})-(?<day>\d{2})`)
	m := re.FindMatch("released 2019-04-27")

	year, _ := m.NamedString("year")
	day, _ := m.NamedString("day")
	fmt.Println(year, day, re.GroupIndex("month"))
	// Output: 2019 27 2
}

// ExampleRegex_FindAllMatches shows that matches never overlap.
func ExampleRegex_FindAllMatches() {
	re := rematch.MustCompile(`(aa)`)
	for _, m := range re.FindAllMatches("aaaa") {
		fmt.Println(m.Span())
	}
	// Output:
	// {0 2}
	// {2 4}
}

// ExampleRegex_FindAllMatches_empty shows how empty matches advance.
func ExampleRegex_FindAllMatches_empty() {
	re := rematch.MustCompile(`a*`)
	for _, m := range re.FindAllMatches("baa") {
		fmt.Printf("%v %q\n", m.Span(), m.String())
	}
	// Output:
	// {0 0} ""
	// {1 3} "aa"
	// {3 3} ""
}

// ExampleRegex_Iter demonstrates lazy iteration.
func ExampleRegex_Iter() {
	re := rematch.MustCompile(`[a-zA-Z]+m\b`)
	it := re.Iter("Lorem ipsum dolor sit amet, consectetur adipiscing elit. Nullam")
	for it.Next() {
		fmt.Println(it.Match())
	}
	// Output:
	// Lorem
	// ipsum
	// Nullam
}

// ExampleRegex_Count demonstrates counting matches.
func ExampleRegex_Count() {
	re := rematch.MustCompile(`a*`)
	fmt.Println(re.Count("bbb"))
	// Output: 4
}

// ExampleRegex_ReplaceAll demonstrates template replacement.
func ExampleRegex_ReplaceAll() {
	re := rematch.MustCompile(`(\w+)a\b`)
	fmt.Println(re.ReplaceAll("En un lugar de la Mancha", "$1o"))
	// Output: En un lugar de lo Mancho
}

// ExampleRegex_ReplaceAllFunc demonstrates callback replacement.
func ExampleRegex_ReplaceAllFunc() {
	re := rematch.MustCompile(`(\w+a)\b`)
	out := re.ReplaceAllFunc("En un lugar de la Mancha", func(m *rematch.Match) string {
		return strings.ToUpper(m.String())
	})
	fmt.Println(out)
	// Output: En un lugar de LA MANCHA
}

// ExampleRegex_Template demonstrates a reusable template with named groups.
func ExampleRegex_Template() {
	re := rematch.MustCompile(`(?<first>\w+) (?<last>\w+)`)
	t := re.Template("${last}, $first")
	fmt.Println(re.ReplaceAllTemplate("Ada Lovelace", t))
	// Output: Lovelace, Ada
}

// ExampleRegex_Split demonstrates splitting around matches.
func ExampleRegex_Split() {
	re := rematch.MustCompile(`\s*,\s*`)
	fmt.Printf("%q\n", re.Split("a , b,c", -1))
	// Output: ["a" "b" "c"]
}

// ExampleCompileWithConfig demonstrates selecting an engine and options.
func ExampleCompileWithConfig() {
	config := rematch.DefaultConfig()
	config.Engine = rematch.Coregex
	config.Options = rematch.IgnoreCase

	re, err := rematch.CompileWithConfig(`(go)+`, config)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", re.FindAllMatches("Go gopher GOGO"))
	// Output: ["Go" "go" "GOGO"]
}

// ExampleCompileLiterals demonstrates matching a set of fixed strings.
func ExampleCompileLiterals() {
	re, err := rematch.CompileLiterals([]string{"error", "fatal"}, rematch.IgnoreCase)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.Count("ERROR: x\nfatal: y"))
	// Output: 2
}

// ExampleNewCache demonstrates caching compiled patterns.
func ExampleNewCache() {
	cache, err := rematch.NewCache(16)
	if err != nil {
		panic(err)
	}
	a, _ := cache.Get(`\d+`, rematch.DefaultConfig())
	b, _ := cache.Get(`\d+`, rematch.DefaultConfig())
	fmt.Println(a == b, cache.Len())
	// Output: true 1
}
