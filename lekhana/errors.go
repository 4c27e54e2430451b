package lekhana

import "errors"

var (
	// ErrMixedCorrections signals a correction list that mixes positional and
	// word-identity records; the two application paths cannot be combined in
	// one pass.
	ErrMixedCorrections = errors.New("lekhana: corrections mix positional and word-identity forms")
)
