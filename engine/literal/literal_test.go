package literal

import (
	"errors"
	"testing"

	"github.com/coregx/rematch/engine"
)

func TestFindAt(t *testing.T) {
	p, err := Compile([]string{"foo", "bar"}, engine.None)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumWords() != 2 || p.NumGroups() != 0 || p.GroupNames() != nil {
		t.Errorf("NumWords=%d NumGroups=%d GroupNames=%v", p.NumWords(), p.NumGroups(), p.GroupNames())
	}

	s := p.Prepare("xx bar foo")
	tests := []struct {
		from       int
		start, end int
		ok         bool
	}{
		{0, 3, 6, true},
		{3, 3, 6, true},
		{4, 7, 10, true},
		{7, 7, 10, true},
		{8, 0, 0, false},
		{10, 0, 0, false},
	}
	for _, tt := range tests {
		raw, ok := s.FindAt(tt.from)
		if ok != tt.ok {
			t.Errorf("FindAt(%d) ok = %v, want %v", tt.from, ok, tt.ok)
			continue
		}
		if ok && (raw.Start() != tt.start || raw.End() != tt.end) {
			t.Errorf("FindAt(%d) = [%d,%d], want [%d,%d]", tt.from, raw.Start(), raw.End(), tt.start, tt.end)
		}
	}
}

func TestIgnoreCase(t *testing.T) {
	p, err := Compile([]string{"Error"}, engine.IgnoreCase)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Prepare("an ERROR occurred")
	raw, ok := s.FindAt(0)
	if !ok || raw.Start() != 3 || raw.End() != 8 {
		t.Errorf("FindAt(0) = %v, %v", raw.Slots, ok)
	}

	p, err = Compile([]string{"Error"}, engine.None)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Prepare("an ERROR occurred").FindAt(0); ok {
		t.Error("case-sensitive word matched different case")
	}
}

func TestMultibyteWords(t *testing.T) {
	p, err := Compile([]string{"€", "año"}, engine.None)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Prepare("5€ el año")
	raw, ok := s.FindAt(0)
	if !ok || raw.Start() != 1 || raw.End() != 4 {
		t.Errorf("FindAt(0) = %v, %v; want [1 4]", raw.Slots, ok)
	}
	raw, ok = s.FindAt(4)
	if !ok || raw.Start() != 8 || raw.End() != 12 {
		t.Errorf("FindAt(4) = %v, %v; want [8 12]", raw.Slots, ok)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, words := range [][]string{nil, {}, {"a", ""}} {
		if _, err := Compile(words, engine.None); !errors.Is(err, ErrEmptyWord) {
			t.Errorf("Compile(%q) error = %v, want ErrEmptyWord", words, err)
		}
	}
	if _, err := Compile([]string{"a"}, engine.Options(1<<15)); !errors.Is(err, engine.ErrUnsupportedOption) {
		t.Errorf("error = %v, want ErrUnsupportedOption", err)
	}
}
