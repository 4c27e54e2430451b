package lekhana

import (
	"encoding/json"
	"os"

	"github.com/25-26J-433-RP/lekhana/internal/match"
	"github.com/25-26J-433-RP/lekhana/internal/model"
)

// Dict is a user dictionary of protected terms (proper nouns, place names)
// that must never be flagged as errors.
type Dict struct {
	Words []string `json:"words"`
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	return &Dict{Words: words}
}

// LoadDict reads a JSON file of the form {"words": ["කොළඹ", ...]}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Protects reports whether word is shielded by the dictionary. Comparison
// uses the same punctuation-stripped key as the matcher, so "කොළඹ," still
// matches a protected "කොළඹ".
func (d *Dict) Protects(word string) bool {
	if d == nil || len(d.Words) == 0 {
		return false
	}
	k := match.Key(word)
	if k == "" {
		return false
	}
	for _, w := range d.Words {
		if match.Key(w) == k {
			return true
		}
	}
	return false
}

// FilterErrors drops findings for words protected by dict.
func FilterErrors(errs []model.BackendError, dict *Dict) []model.BackendError {
	if dict == nil || len(dict.Words) == 0 {
		return errs
	}
	kept := errs[:0]
	for _, e := range errs {
		if dict.Protects(e.Word) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
