// Package local provides an offline analysis backend backed by the hunspell
// binary (ispell-compatible pipe protocol, -a flag). Unlike the remote
// engines it knows where each word sits in the text, so its findings carry
// rune-offset positions and feed the offset-based patcher directly.
package local

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/pkg/errors"

	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/util"
)

// Hunspell wraps a running hunspell process in pipe mode.
type Hunspell struct {
	stdin io.WriteCloser
	out   *bufio.Reader
	mu    sync.Mutex
}

// New starts a hunspell subprocess.
// dictDir: directory containing <lang>.aff / <lang>.dic (pass "" to use the
// system dictionary). lang: dictionary name, e.g. "si".
func New(dictDir, lang string) (*Hunspell, error) {
	dictArg := lang
	if dictDir != "" {
		aff := filepath.Join(dictDir, lang+".aff")
		dic := filepath.Join(dictDir, lang+".dic")
		if _, err := os.Stat(aff); err != nil {
			return nil, errors.Errorf("local: hunspell dict missing: %s", aff)
		}
		if _, err := os.Stat(dic); err != nil {
			return nil, errors.Errorf("local: hunspell dict missing: %s", dic)
		}
		dictArg = filepath.Join(dictDir, lang)
	}

	cmd := exec.Command("hunspell", "-d", dictArg, "-a", "-i", "UTF-8")
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "local: stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "local: stdout pipe")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "local: hunspell start (is hunspell installed?)")
	}

	h := &Hunspell{
		stdin: stdin,
		out:   bufio.NewReader(stdout),
	}
	// Discard the initial banner: "Hunspell x.y.z\n"
	if _, err := h.out.ReadString('\n'); err != nil {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
		return nil, errors.Wrap(err, "local: hunspell init failed")
	}

	return h, nil
}

// CheckText checks every word of text and returns accepted offset-based
// corrections for the misspelled ones (first suggestion wins).
func (h *Hunspell) CheckText(text string) ([]model.Correction, error) {
	words := scanWords(text)
	if len(words) == 0 {
		return nil, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var out []model.Correction
	for _, w := range words {
		correct, suggest, err := h.checkWord(w.text)
		if err != nil {
			return nil, err
		}
		if correct || len(suggest) == 0 {
			continue
		}

		out = append(out, model.Correction{
			Word:       w.text,
			Suggestion: suggest[0],
			Pattern:    "spelling",
			Confidence: util.Similarity(w.text, suggest[0]),
			Accepted:   true,
			Position:   &model.Position{Start: w.start, End: w.end},
		})
	}
	return out, nil
}

// checkWord sends one word to hunspell and parses the response.
// Ispell pipe protocol:
//
//	*, +     → correct
//	-        → correct compound
//	& w n o: s1, s2 → misspelled, suggestions
//	# w o    → misspelled, no suggestions
func (h *Hunspell) checkWord(word string) (correct bool, suggest []string, err error) {
	if _, err = io.WriteString(h.stdin, "^"+word+"\n"); err != nil {
		return false, nil, err
	}

	for {
		line, e := h.out.ReadString('\n')
		if e != nil && e != io.EOF {
			return false, nil, e
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // blank line = end of result for this word
		}

		switch line[0] {
		case '*', '+', '-':
			correct = true
		case '&':
			correct = false
			if idx := strings.Index(line, ": "); idx != -1 {
				for _, s := range strings.Split(line[idx+2:], ", ") {
					if s = strings.TrimSpace(s); s != "" {
						suggest = append(suggest, s)
					}
				}
			}
		case '#':
			correct = false
		}
	}
	return
}

// word is a letter/digit run with its rune offsets in the original text.
type word struct {
	text  string
	start int // inclusive rune offset
	end   int // exclusive rune offset
}

// scanWords splits text into word runs, tracking rune offsets for the
// patcher.
func scanWords(text string) []word {
	runes := []rune(text)
	var words []word
	i := 0
	for i < len(runes) {
		if !isWordChar(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && isWordChar(runes[i]) {
			i++
		}
		words = append(words, word{
			text:  string(runes[start:i]),
			start: start,
			end:   i,
		})
	}
	return words
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\''
}
