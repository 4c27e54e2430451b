package model

// TokenKind distinguishes editable word runs from inert whitespace runs.
type TokenKind string

const (
	KindWord       TokenKind = "word"
	KindWhitespace TokenKind = "whitespace"
)

// TokenState is the review state of a word token.
type TokenState string

const (
	// StateFlagged: the backend reported an error; awaiting reviewer decision.
	StateFlagged TokenState = "flagged"
	// StateCorrected: display text differs from the original (accept or edit).
	StateCorrected TokenState = "corrected"
	// StateIgnored: left as-is, either never flagged or rejected.
	StateIgnored TokenState = "ignored"
)

// Token is one unit of the essay tracked through the correction workflow.
// Concatenating Original over all tokens in order reproduces the input text;
// concatenating Display reproduces the current corrected text.
type Token struct {
	ID          int        `json:"id"`
	Original    string     `json:"original"`            // exact source substring, never mutated
	Display     string     `json:"display"`             // text used for reconstruction
	Corrected   string     `json:"corrected,omitempty"` // backend suggestion or reviewer edit
	Kind        TokenKind  `json:"kind"`
	State       TokenState `json:"state"`
	Pattern     string     `json:"pattern,omitempty"`     // dyslexia pattern from the backend
	Explanation string     `json:"explanation,omitempty"` // why the backend flagged it
	Confidence  float64    `json:"confidence,omitempty"`
	Source      string     `json:"source,omitempty"` // engine that reported the error
}

// BackendError is one word-level finding from the analysis service.
// Errors are per-occurrence: each consumes at most one token during matching.
type BackendError struct {
	Word        string  `json:"word"`
	Type        string  `json:"type"` // "error" | "correct"
	Suggestion  string  `json:"suggestion,omitempty"`
	Pattern     string  `json:"dyslexiaPattern,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Position is a rune-offset span into the original text.
type Position struct {
	Start int `json:"start"` // inclusive rune offset
	End   int `json:"end"`   // exclusive rune offset
}

// Correction is the offset-based correction contract.
// Position is optional; corrections without it are applied by word identity.
type Correction struct {
	Word       string    `json:"word"`
	Suggestion string    `json:"suggestion"`
	Pattern    string    `json:"pattern,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	Accepted   bool      `json:"accepted"`
	Position   *Position `json:"position,omitempty"`
}

// CorrectionRecord is one audit/training-data row: a token whose final state
// is corrected.
type CorrectionRecord struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Pattern   string `json:"pattern,omitempty"`
}

// Report is JSON-serialisable as-is.
type Report struct {
	Original     string             `json:"original"`              // source essay text
	Corrected    string             `json:"corrected"`             // all suggestions accepted
	EditDistance int                `json:"editDistance"`          // Levenshtein(original, corrected)
	CharCount    int                `json:"charCount"`             // UTF-8 rune length
	ErrorCount   int                `json:"errorCount"`            // flagged tokens after matching
	Tokens       []Token            `json:"tokens,omitempty"`      // full token sequence (engine modes)
	Records      []CorrectionRecord `json:"corrections,omitempty"` // audit export rows
}
