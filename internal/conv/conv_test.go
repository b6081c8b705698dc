package conv

import (
	"testing"
	"unicode/utf8"
)

func TestIndexASCII(t *testing.T) {
	x := NewIndex("hello")
	if x.offsets != nil {
		t.Fatalf("ASCII index should not keep an offset table")
	}
	for i := 0; i <= 5; i++ {
		if got := x.ByteOffset(i); got != i {
			t.Errorf("ByteOffset(%d) = %d, want %d", i, got, i)
		}
		if got := x.RuneOffset(i); got != i {
			t.Errorf("RuneOffset(%d) = %d, want %d", i, got, i)
		}
	}
	if string(x.Runes()) != "hello" {
		t.Errorf("Runes() = %q, want %q", string(x.Runes()), "hello")
	}
}

func TestIndexMultibyte(t *testing.T) {
	s := "añb€c"
	x := NewIndex(s)

	tests := []struct {
		rune, byte int
	}{
		{0, 0}, // a
		{1, 1}, // ñ
		{2, 3}, // b
		{3, 4}, // €
		{4, 7}, // c
		{5, 8}, // end
	}
	for _, tt := range tests {
		if got := x.ByteOffset(tt.rune); got != tt.byte {
			t.Errorf("ByteOffset(%d) = %d, want %d", tt.rune, got, tt.byte)
		}
		if got := x.RuneOffset(tt.byte); got != tt.rune {
			t.Errorf("RuneOffset(%d) = %d, want %d", tt.byte, got, tt.rune)
		}
	}

	// Offsets inside a rune round up to the next rune.
	if got := x.RuneOffset(2); got != 2 {
		t.Errorf("RuneOffset(2) = %d, want 2", got)
	}
	if got := x.RuneOffset(5); got != 4 {
		t.Errorf("RuneOffset(5) = %d, want 4", got)
	}
	if x.Len() != len(s) {
		t.Errorf("Len() = %d, want %d", x.Len(), len(s))
	}
}

func TestIndexInvalidUTF8(t *testing.T) {
	s := "a\xffb"
	x := NewIndex(s)
	if len(x.Runes()) != 3 {
		t.Fatalf("len(Runes()) = %d, want 3", len(x.Runes()))
	}
	if x.Runes()[1] != utf8.RuneError {
		t.Errorf("Runes()[1] = %U, want RuneError", x.Runes()[1])
	}
	if got := x.ByteOffset(2); got != 2 {
		t.Errorf("ByteOffset(2) = %d, want 2", got)
	}
}

func TestIndexPanicsOutOfRange(t *testing.T) {
	x := NewIndex("añ")
	for _, f := range []func(){
		func() { x.ByteOffset(-1) },
		func() { x.ByteOffset(3) },
		func() { x.RuneOffset(4) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			f()
		}()
	}
}
