package chunk

import (
	"strings"
	"testing"
)

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	got := Split("මම පාසල් යමි.", MaxWords)
	if len(got) != 1 || got[0] != "මම පාසල් යමි." {
		t.Fatalf("Split() = %q, want single chunk", got)
	}
}

func TestSplit_LongTextChunked(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 750))
	got := Split(text, 300)
	if len(got) != 3 {
		t.Fatalf("Split() produced %d chunks, want 3", len(got))
	}
	total := 0
	for i, c := range got {
		n := len(strings.Fields(c))
		total += n
		if n > 300 {
			t.Errorf("chunk %d has %d words, want ≤300", i, n)
		}
	}
	if total != 750 {
		t.Fatalf("chunks hold %d words, want 750 (no word lost)", total)
	}
}

func TestSplit_EmptyText(t *testing.T) {
	got := Split("", MaxWords)
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("Split(\"\") = %q, want one empty chunk", got)
	}
}
