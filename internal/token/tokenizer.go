// Package token splits essay text into an ordered, lossless sequence of
// whitespace runs and word runs. Concatenating the runs reproduces the
// input byte-for-byte, which is what lets the reconstructor preserve the
// writer's exact spacing.
package token

import "unicode"

// Run is one maximal run of the input: either all whitespace or
// whitespace-free.
type Run struct {
	Text       string
	Whitespace bool
}

// Split breaks text into runs. Every byte of the input lands in exactly one
// run, in order. Empty input yields nil.
func Split(text string) []Run {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	runs := make([]Run, 0, estimateRuns(text))

	start := 0
	ws := unicode.IsSpace(runes[0])
	for i := 1; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) == ws {
			continue
		}
		runs = append(runs, Run{Text: string(runes[start:i]), Whitespace: ws})
		start, ws = i, !ws
	}
	return append(runs, Run{Text: string(runes[start:]), Whitespace: ws})
}

// Join is the inverse of Split.
func Join(runs []Run) string {
	n := 0
	for _, r := range runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// estimateRuns guesses capacity from an "avg 5-byte word + 1 space" essay.
func estimateRuns(s string) int {
	return len(s)/3 + 1
}
