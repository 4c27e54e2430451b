package util

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"bal", "ball", 1},
		{"has", "have", 2},
		{"kitten", "sitting", 3},
		{"මම", "මම", 0},
		{"යමි", "යනවා", 3},
	}
	for _, c := range cases {
		if got := Levenshtein(c.a, c.b); got != c.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("bal", "bal"); got != 1 {
		t.Errorf("Similarity(equal) = %v, want 1", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Errorf("Similarity(empty) = %v, want 1", got)
	}
	if got := Similarity("abc", "xyz"); got != 0 {
		t.Errorf("Similarity(disjoint) = %v, want 0", got)
	}
	if got := Similarity("bal", "ball"); got != 0.75 {
		t.Errorf("Similarity(bal, ball) = %v, want 0.75", got)
	}
}
