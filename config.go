package rematch

import (
	"strconv"
	"strings"

	"github.com/coregx/rematch/engine"
)

// Options is a set of compile-time matching options, passed through to the
// delegate engine.
type Options = engine.Options

// Matching options. Not every engine supports every option; see Engine.
const (
	None             = engine.None
	IgnoreCase       = engine.IgnoreCase
	Multiline        = engine.Multiline
	DotAll           = engine.DotAll
	IgnoreWhitespace = engine.IgnoreWhitespace
	ExplicitCapture  = engine.ExplicitCapture
)

// Engine selects the delegate engine a pattern is compiled with.
type Engine uint8

const (
	// Backtrack uses dlclark/regexp2: Perl/.NET syntax with
	// backreferences, lookaround and named groups. All options.
	Backtrack Engine = iota

	// Coregex uses coregx/coregex: RE2 syntax, linear time.
	// IgnoreCase, Multiline and DotAll.
	Coregex

	// RE2 uses wasilibs/go-re2: RE2 syntax, linear time.
	// IgnoreCase, Multiline and DotAll.
	RE2

	// Literal treats the pattern as a plain string matched with
	// Aho-Corasick. IgnoreCase folds ASCII only.
	Literal

	numEngines
)

var engineNames = [numEngines]string{
	Backtrack: "backtrack",
	Coregex:   "coregex",
	RE2:       "re2",
	Literal:   "literal",
}

// String returns the lower-case name of the engine.
func (e Engine) String() string {
	if e < numEngines {
		return engineNames[e]
	}
	return "engine(" + strconv.Itoa(int(e)) + ")"
}

// ParseEngine returns the Engine called name, case-insensitively.
//
// Example:
//
//	e, err := rematch.ParseEngine("re2")
func ParseEngine(name string) (Engine, error) {
	for e, n := range engineNames {
		if strings.EqualFold(n, name) {
			return Engine(e), nil
		}
	}
	return 0, &ConfigError{
		Field:   "Engine",
		Message: "unknown engine " + strconv.Quote(name) + " (want one of " + strings.Join(engineNames[:], ", ") + ")",
	}
}

// Config controls how a pattern is compiled.
//
// Example:
//
//	config := rematch.DefaultConfig()
//	config.Engine = rematch.Coregex
//	config.Options = rematch.IgnoreCase | rematch.Multiline
//	re, err := rematch.CompileWithConfig(`^error: (.*)$`, config)
type Config struct {
	// Engine is the delegate engine.
	// Default: Backtrack
	Engine Engine

	// Options are passed to the engine. An option the engine cannot honor
	// makes compilation fail with engine.ErrUnsupportedOption.
	// Default: None
	Options Options
}

// DefaultConfig returns the configuration Compile uses.
func DefaultConfig() Config {
	return Config{
		Engine:  Backtrack,
		Options: None,
	}
}

// Validate checks that the engine and every option bit are known.
// Whether the engine supports the options is checked at compile time.
func (c Config) Validate() error {
	if c.Engine >= numEngines {
		return &ConfigError{
			Field:   "Engine",
			Message: "unknown engine " + c.Engine.String(),
		}
	}
	if !c.Options.Valid() {
		return &ConfigError{
			Field:   "Options",
			Message: "unknown option bits in " + c.Options.String(),
		}
	}
	return nil
}
