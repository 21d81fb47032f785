package ascii

import "math/bits"

// CharSet represents a precomputed 256-bit byte set.
// Build once with MakeCharSet, then reuse for Contains, Count and IndexAny.
type CharSet struct {
	bitset [4]uint64
}

// Whitespace is the set of bytes matched by IsSpaceTable and friends.
var Whitespace = MakeCharSet(" \n\t\r")

// MakeCharSet creates a CharSet from the given characters.
func MakeCharSet(chars string) CharSet {
	var cs CharSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		cs.bitset[c>>6] |= 1 << (c & 63)
	}
	return cs
}

// Contains reports whether c is in the CharSet.
func (cs CharSet) Contains(c byte) bool {
	return cs.bitset[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of distinct bytes in the CharSet.
func (cs CharSet) Len() int {
	return bits.OnesCount64(cs.bitset[0]) + bits.OnesCount64(cs.bitset[1]) +
		bits.OnesCount64(cs.bitset[2]) + bits.OnesCount64(cs.bitset[3])
}

// Count returns the number of bytes in s that are in the CharSet.
func (cs CharSet) Count(s string) int {
	if cs.bitset == [4]uint64{} {
		return 0
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		n += int(cs.bitset[c>>6] >> (c & 63) & 1)
	}
	return n
}

// IndexAny returns the index of the first byte in s that is in the CharSet,
// or -1 if no such byte exists. The Whitespace set is scanned a word at a time.
func (cs CharSet) IndexAny(s string) int {
	switch cs.bitset {
	case [4]uint64{}:
		return -1
	case Whitespace.bitset:
		return IndexSpace(s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if cs.bitset[c>>6]&(1<<(c&63)) != 0 {
			return i
		}
	}
	return -1
}

// ContainsAny reports whether any byte in s is in the CharSet.
func (cs CharSet) ContainsAny(s string) bool {
	return cs.IndexAny(s) >= 0
}

// IndexAny finds the first occurrence of any byte from chars in s.
func IndexAny(s, chars string) int {
	if len(chars) == 0 {
		return -1
	}
	return MakeCharSet(chars).IndexAny(s)
}
