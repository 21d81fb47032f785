package ascii

import "unicode"

// spaceTable holds one flag per byte value; only ' ', '\n', '\t' and '\r' are set.
var spaceTable = [256]bool{
	' ':  true,
	'\n': true,
	'\t': true,
	'\r': true,
}

// IsSpaceTable reports whether c is whitespace using the precomputed table.
func IsSpaceTable(c byte) bool {
	return spaceTable[c]
}

// IsSpaceBranch reports whether c is whitespace using a short-circuit comparison chain.
func IsSpaceBranch(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

// IsSpaceSwitch reports whether c is whitespace using a single multi-case switch.
func IsSpaceSwitch(c byte) bool {
	switch c {
	case ' ', '\n', '\t', '\r':
		return true
	}
	return false
}

// IsSpacePlatform reports whether c is whitespace according to unicode.IsSpace.
//
// Unlike the other predicates it also accepts '\v', '\f', U+0085 (NEL) and
// U+00A0 (NBSP), the remaining Latin-1 members of unicode.White_Space.
func IsSpacePlatform(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// CountFunc returns the number of bytes in s for which pred returns true.
func CountFunc[T string | []byte](s T, pred func(byte) bool) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if pred(s[i]) {
			n++
		}
	}
	return n
}

// The Count* functions below repeat the loop instead of calling CountFunc so
// the predicate is inlined into the scan.

// CountTable counts whitespace bytes in s using the lookup table.
func CountTable(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if spaceTable[s[i]] {
			n++
		}
	}
	return n
}

// CountBranch counts whitespace bytes in s using the comparison chain.
func CountBranch(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			n++
		}
	}
	return n
}

// CountSwitch counts whitespace bytes in s using the switch predicate.
func CountSwitch(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\t', '\r':
			n++
		}
	}
	return n
}

// CountPlatform counts bytes in s accepted by unicode.IsSpace.
func CountPlatform(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if unicode.IsSpace(rune(s[i])) {
			n++
		}
	}
	return n
}
