package classwork

import "unicode"

// IsAnagram reports whether a and b contain the same characters with the
// same multiplicity, ignoring case and any whitespace.
func IsAnagram(a string, b string) bool {
	counts := make(map[rune]int)
	for _, r := range a {
		if unicode.IsSpace(r) {
			continue
		}
		counts[unicode.ToLower(r)] += 1
	}
	for _, r := range b {
		if unicode.IsSpace(r) {
			continue
		}
		lower := unicode.ToLower(r)
		remaining, ok := counts[lower]
		if !ok {
			return false
		}
		if remaining == 1 {
			delete(counts, lower)
		} else {
			counts[lower] = remaining - 1
		}
	}
	return len(counts) == 0
}
