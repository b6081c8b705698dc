package rematch

import (
	"errors"
	"regexp/syntax"
	"strconv"
)

// CompileError reports a pattern the delegate engine rejected, or an option
// it cannot honor. No Regex is produced.
type CompileError struct {
	Pattern string
	Engine  Engine
	Err     error
}

// Error implements the error interface.
// RE2-family syntax errors already name the pattern and are returned as is.
func (e *CompileError) Error() string {
	var syntaxErr *syntax.Error
	if errors.As(e.Err, &syntaxErr) {
		return e.Err.Error()
	}
	return "rematch: compiling " + strconv.Quote(e.Pattern) + " with " + e.Engine.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rematch: invalid config: " + e.Field + ": " + e.Message
}

// IndexError reports a search offset that is outside [0, Len] or falls
// inside a multi-byte UTF-8 sequence.
//
// Offsets are never clamped: FindMatchAt and IterAt both report an
// IndexError for the same inputs.
type IndexError struct {
	Offset int
	Len    int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Offset < 0 || e.Offset > e.Len {
		return "rematch: offset " + strconv.Itoa(e.Offset) + " out of range [0, " + strconv.Itoa(e.Len) + "]"
	}
	return "rematch: offset " + strconv.Itoa(e.Offset) + " is inside a UTF-8 sequence"
}
