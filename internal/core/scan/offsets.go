package scan

// offsetMap converts byte offsets from regexp matches into code-point offsets.
// Built once per scan, O(len) space, O(1) lookup
type offsetMap []int

func newOffsetMap(text string) offsetMap {
	m := make(offsetMap, len(text)+1)
	runes := 0
	for i := range m {
		m[i] = -1
	}
	for i := range text {
		m[i] = runes
		runes++
	}
	m[len(text)] = runes
	// fill continuation bytes with the rune index of the rune they belong to
	last := 0
	for i := range m {
		if m[i] >= 0 {
			last = m[i]
		} else {
			m[i] = last
		}
	}
	return m
}

// Rune maps a byte offset to its code-point offset
func (m offsetMap) Rune(b int) int {
	if b < 0 {
		return 0
	}
	if b >= len(m) {
		return m[len(m)-1]
	}
	return m[b]
}
