package ascii

import "math/bits"

const (
	lsb = ^uint64(0) / 255 // 0x0101010101010101
	low = lsb * 0x7f
	msb = lsb * 0x80

	spaceWord = lsb * ' '
	tabWord   = lsb * '\t'
	lfWord    = lsb * '\n'
	crWord    = lsb * '\r'
)

// zeroBytes sets the high bit of every byte of x that is zero and clears
// everything else. Unlike the classic (x-lsb)&^x&msb test it has no false
// positives from borrows, so the result can be popcounted.
func zeroBytes(x uint64) uint64 {
	return ^(((x & low) + low) | x | low)
}

// spaceBytes marks each whitespace byte of x with 0x80.
func spaceBytes(x uint64) uint64 {
	return zeroBytes(x^spaceWord) | zeroBytes(x^tabWord) |
		zeroBytes(x^lfWord) | zeroBytes(x^crWord)
}

func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	// the compiler should be able to optimize this to a single 64-bit load
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// CountSpaceSWAR counts whitespace bytes in s eight bytes at a time.
func CountSpaceSWAR[T string | []byte](s T) int {
	n := 0
	for ; len(s) >= 32; s = s[32:] {
		m := spaceBytes(load64(s)) >> 7
		m += spaceBytes(load64(s[8:])) >> 6
		m += spaceBytes(load64(s[16:])) >> 5
		m += spaceBytes(load64(s[24:])) >> 4
		// each byte now holds at most 4 disjoint bits
		n += bits.OnesCount64(m)
	}
	for ; len(s) >= 8; s = s[8:] {
		n += bits.OnesCount64(spaceBytes(load64(s)))
	}
	for i := 0; i < len(s); i++ {
		if spaceTable[s[i]] {
			n++
		}
	}
	return n
}

// IndexSpace returns the index of the first whitespace byte in s, or -1.
func IndexSpace[T string | []byte](s T) int {
	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		if m := spaceBytes(load64(s)); m != 0 {
			return pos + bits.TrailingZeros64(m)/8
		}
	}
	for i := 0; i < len(s); i++ {
		if spaceTable[s[i]] {
			return pos + i
		}
	}
	return -1
}
