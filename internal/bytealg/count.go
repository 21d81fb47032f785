package bytealg

import "strings"

// CountAny returns the number of bytes in s that occur in chars.
// Each distinct byte of chars costs one pass of the runtime's vectorised
// strings.Count, so this wins for small sets and loses for large ones.
func CountAny(s, chars string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		n += strings.Count(s, chars[i:i+1])
	}
	return n
}
