package parse

import (
	"encoding/json"
	"strings"

	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/util"
)

// envelope is the wire shape shared by all analysis engines.
type envelope struct {
	Errors []model.BackendError `json:"errors"`
}

// Decode converts a raw analysis response into a normalized []BackendError.
// source labels the engine the response came from.
func Decode(raw []byte, source string) ([]model.BackendError, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	out := make([]model.BackendError, 0, len(env.Errors))
	for _, e := range env.Errors {
		e.Word = strings.TrimSpace(e.Word)
		e.Suggestion = strings.TrimSpace(e.Suggestion)
		if e.Word == "" {
			continue
		}
		if e.Type == "" {
			// Engines occasionally omit type; a suggestion implies an error.
			if e.Suggestion != "" {
				e.Type = "error"
			} else {
				e.Type = "correct"
			}
		}
		if e.Confidence == 0 && e.Suggestion != "" {
			e.Confidence = util.Similarity(e.Word, e.Suggestion)
		}
		if e.Source == "" {
			e.Source = source
		}
		out = append(out, e)
	}
	return out, nil
}
