package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/25-26J-433-RP/lekhana/internal/model"
	stdnet "github.com/25-26J-433-RP/lekhana/internal/net"
	"github.com/25-26J-433-RP/lekhana/internal/parse"
)

// REST is the engine for the project's own grading backend, which exposes
// the shared findings contract at POST {base}/v1/analyze.
type REST struct {
	base string
}

// NewREST creates a REST engine against the given base URL.
func NewREST(baseURL string) *REST {
	return &REST{base: strings.TrimRight(baseURL, "/")}
}

func (r *REST) Name() string { return "rest" }

type restRequest struct {
	Text      string   `json:"text"`
	Protected []string `json:"protected,omitempty"`
}

// Analyze posts the essay and decodes the findings.
func (r *REST) Analyze(ctx context.Context, text string, protected []string) ([]model.BackendError, error) {
	body, err := json.Marshal(restRequest{Text: text, Protected: protected})
	if err != nil {
		return nil, err
	}

	req, err := stdnet.NewPOST(ctx, r.base, "/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := stdnet.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "rest: request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "rest: read body")
	}
	if resp.StatusCode != 200 {
		return nil, errors.Errorf("rest: backend returned %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	return parse.Decode(raw, r.Name())
}
