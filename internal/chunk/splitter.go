package chunk

// MaxWords is the per-request word budget of the analysis backends.
const MaxWords = 300

// Split slices the string into chunks of at most max space-separated words,
// without decoding UTF-8 runes (Sinhala words are still separated by ASCII
// spaces/newlines). Zero copies, one slice alloc.
func Split(s string, max int) []string {
	if max <= 0 {
		max = MaxWords
	}

	// Capacity hint: avg 18-byte Sinhala word + 1 space.
	hint := len(s)/(max*19) + 1
	res := make([]string, 0, hint)

	start, words := 0, 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == ' ' || b == '\n' {
			words++
			if words == max {
				res = append(res, s[start:i])
				start, words = i+1, 0
			}
		}
	}
	// trailing slice (never empty because start ≤ len(s))
	return append(res, s[start:])
}
