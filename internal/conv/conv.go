// Package conv converts between the byte offsets rematch exposes and the
// rune offsets used by engines that search a []rune.
//
// Offsets are always in range for the text the Index was built from. An
// out-of-range offset indicates a programming error in an engine adapter and
// panics.
package conv

import (
	"sort"
	"unicode/utf8"
)

// Index maps rune offsets to byte offsets and back for one string.
//
// For ASCII input both offset spaces coincide and no table is kept.
type Index struct {
	runes []rune
	// offsets[i] is the byte offset of rune i; offsets[len(runes)] is the
	// length of the string. nil when the string is ASCII.
	offsets []int
	size    int
}

// NewIndex builds an Index for s.
//
// Invalid UTF-8 bytes become one utf8.RuneError each, the same way range
// over a string and []rune(s) treat them, so the two offset spaces stay in
// lockstep.
//
// Example:
//
//	x := conv.NewIndex("añb")
//	println(x.ByteOffset(2)) // 3
//	println(x.RuneOffset(3)) // 2
func NewIndex(s string) *Index {
	x := &Index{size: len(s)}
	if isASCII(s) {
		x.runes = make([]rune, len(s))
		for i := 0; i < len(s); i++ {
			x.runes[i] = rune(s[i])
		}
		return x
	}

	n := utf8.RuneCountInString(s)
	x.runes = make([]rune, 0, n)
	x.offsets = make([]int, 0, n+1)
	for i, r := range s {
		x.runes = append(x.runes, r)
		x.offsets = append(x.offsets, i)
	}
	x.offsets = append(x.offsets, len(s))
	return x
}

// Runes returns the rune form of the string. The slice is shared and must
// not be modified.
func (x *Index) Runes() []rune {
	return x.runes
}

// Len returns the length of the string in bytes.
func (x *Index) Len() int {
	return x.size
}

// ByteOffset converts a rune offset in [0, len(Runes())] to a byte offset.
// Panics if r is out of range.
func (x *Index) ByteOffset(r int) int {
	if r < 0 || r > len(x.runes) {
		panic("conv: rune offset out of range")
	}
	if x.offsets == nil {
		return r
	}
	return x.offsets[r]
}

// RuneOffset converts a byte offset in [0, Len()] to a rune offset. A byte
// offset inside a multi-byte rune maps to the rune that follows it.
// Panics if b is out of range.
func (x *Index) RuneOffset(b int) int {
	if b < 0 || b > x.size {
		panic("conv: byte offset out of range")
	}
	if x.offsets == nil {
		return b
	}
	return sort.SearchInts(x.offsets, b)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
