package ascii

import segAscii "github.com/segmentio/asm/ascii"

// ValidString reports whether s contains only 7-bit ASCII bytes.
func ValidString(s string) bool {
	return segAscii.ValidString(s)
}
