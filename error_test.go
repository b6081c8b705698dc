package rematch

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		engine  Engine
		prefix  string
	}{
		{"backtrack", "(abc", Backtrack, `rematch: compiling "(abc" with backtrack: `},
		{"coregex", "(abc", Coregex, "error parsing regexp: "},
		{"literal empty", "", Literal, `rematch: compiling "" with literal: `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileWithConfig(tt.pattern, Config{Engine: tt.engine})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("Error() = %q, want prefix %q", err.Error(), tt.prefix)
			}
		})
	}
}

func TestBackreferenceRejectedByLinearEngines(t *testing.T) {
	for _, e := range []Engine{Coregex, RE2} {
		_, err := CompileWithConfig(`(abc|def)=\1`, Config{Engine: e})
		var ce *CompileError
		if !errors.As(err, &ce) {
			t.Errorf("%v: error = %v, want *CompileError", e, err)
		}
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "size", Message: "must be positive"}
	if got, want := err.Error(), "rematch: invalid config: size: must be positive"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIndexErrorMessage(t *testing.T) {
	tests := []struct {
		err  *IndexError
		want string
	}{
		{&IndexError{Offset: -1, Len: 3}, "rematch: offset -1 out of range [0, 3]"},
		{&IndexError{Offset: 4, Len: 3}, "rematch: offset 4 out of range [0, 3]"},
		{&IndexError{Offset: 2, Len: 5}, "rematch: offset 2 is inside a UTF-8 sequence"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestOnRuneBoundary(t *testing.T) {
	tests := []struct {
		s    string
		i    int
		want bool
	}{
		{"abc", 1, true},
		{"a€b", 1, true},
		{"a€b", 2, false},
		{"a€b", 3, false},
		{"a€b", 4, true},
		// A stray continuation byte is a rune of its own.
		{"a\x80b", 1, true},
		{"a\x80b", 2, true},
		// A truncated sequence.
		{"\xe2\x82", 1, true},
	}
	for _, tt := range tests {
		if got := onRuneBoundary(tt.s, tt.i); got != tt.want {
			t.Errorf("onRuneBoundary(%q, %d) = %v, want %v", tt.s, tt.i, got, tt.want)
		}
	}
}
