package rematch

import (
	"testing"

	"github.com/coregx/rematch/engine"
	"github.com/google/go-cmp/cmp"
)

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 5}
	if s.Len() != 3 || s.IsEmpty() {
		t.Errorf("Span{2,5}: Len=%d IsEmpty=%v", s.Len(), s.IsEmpty())
	}
	e := Span{Start: 4, End: 4}
	if e.Len() != 0 || !e.IsEmpty() {
		t.Errorf("Span{4,4}: Len=%d IsEmpty=%v", e.Len(), e.IsEmpty())
	}
}

func TestNewMatchPadsMissingSlots(t *testing.T) {
	// An engine may report fewer slots than the pattern has groups.
	raw := engine.RawMatch{Slots: []int{1, 3, 1, 2}}
	m := newMatch("xabc", raw, 3, nil)

	if m.NumGroups() != 3 {
		t.Fatalf("NumGroups() = %d, want 3", m.NumGroups())
	}
	want := []Group{
		{Span: Span{1, 3}, Matched: true},
		{Span: Span{1, 2}, Matched: true},
		{},
		{},
	}
	if diff := cmp.Diff(want, m.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMatchNegativeSlots(t *testing.T) {
	raw := engine.RawMatch{Slots: []int{0, 1, -1, -1, 0, 0}}
	m := newMatch("a", raw, 2, map[string]int{"gone": 1, "empty": 2})

	if _, ok := m.Named("gone"); ok {
		t.Error("Named(gone) reported a group for -1 slots")
	}
	s, ok := m.Named("empty")
	if !ok || !s.IsEmpty() {
		t.Errorf("Named(empty) = %v, %v; want empty span, true", s, ok)
	}
	if got, ok := m.NamedString("empty"); !ok || got != "" {
		t.Errorf("NamedString(empty) = %q, %v", got, ok)
	}
}

func TestMatchAccessors(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)(\.org)?`)
	text := "write to ada@example"
	m := re.FindMatch(text)

	if m.Start() != 9 || m.End() != len(text) {
		t.Errorf("Start()=%d End()=%d", m.Start(), m.End())
	}
	if m.Text() != text {
		t.Errorf("Text() = %q", m.Text())
	}
	if got, ok := m.GroupString(2); !ok || got != "example" {
		t.Errorf("GroupString(2) = %q, %v", got, ok)
	}
	if got, ok := m.GroupString(3); ok || got != "" {
		t.Errorf("GroupString(3) = %q, %v; want \"\", false", got, ok)
	}
	for _, i := range []int{-1, 4, 100} {
		if _, ok := m.Group(i); ok {
			t.Errorf("Group(%d) reported ok", i)
		}
	}
	if diff := cmp.Diff([]string{"ada@example", "ada", "example", ""}, m.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchGroupsIsCopy(t *testing.T) {
	m := MustCompile(`(a)`).FindMatch("a")
	groups := m.Groups()
	groups[1].Matched = false
	if _, ok := m.Group(1); !ok {
		t.Error("mutating Groups() changed the Match")
	}
}
