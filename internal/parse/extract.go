package parse

import (
	"bytes"
	"strings"
)

// ExtractJSONBlock pulls the first balanced `{ … }` object out of raw LLM
// output, tolerating ```json fences and prose around it. Returns nil when no
// complete object is present.
func ExtractJSONBlock(b []byte) []byte {
	b = stripFence(b)

	i := bytes.IndexByte(b, '{')
	if i < 0 {
		return nil
	}

	depth, inStr, esc := 0, false, false
	for j := i; j < len(b); j++ {
		c := b[j]
		switch {
		case esc:
			esc = false
		case inStr && c == '\\':
			esc = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return b[i : j+1]
			}
		}
	}
	return nil
}

// stripFence removes optional ```json … ``` wrapping.
func stripFence(b []byte) []byte {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return []byte(s)
}
