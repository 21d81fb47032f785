package ascii

// Histogram holds the number of occurrences of every byte value in a buffer.
type Histogram [256]int

// BuildHistogram counts every byte of s.
func BuildHistogram(s string) Histogram {
	var h Histogram
	for i := 0; i < len(s); i++ {
		h[s[i]]++
	}
	return h
}

// CountIn returns how many of the counted bytes are in cs.
func (h *Histogram) CountIn(cs CharSet) int {
	n := 0
	for c := range h {
		if cs.Contains(byte(c)) {
			n += h[c]
		}
	}
	return n
}

// Total returns the number of bytes counted.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}
