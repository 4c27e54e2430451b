package util

// Levenshtein returns the rune-level edit distance between a and b.
// Single rolling row; no quadratic table.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := i // distance(ra[:i], "")
		for j := 1; j <= len(rb); j++ {
			cur := row[j-1] // substitution (or match)
			if ra[i-1] != rb[j-1] {
				cur = min3(row[j-1], row[j], prev) + 1
			}
			row[j-1] = prev
			prev = cur
		}
		row[len(rb)] = prev
	}
	return row[len(rb)]
}

// Similarity maps edit distance to [0,1]: 1 for equal strings, 0 when every
// rune differs. Used as a confidence fallback when the backend omits one.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	n := la
	if lb > n {
		n = lb
	}
	if n == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(n)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
