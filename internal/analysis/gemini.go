package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/parse"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// Gemini is an analysis engine backed by the Gemini API.
type Gemini struct {
	APIKey string
	Model  string
}

// NewGemini creates a Gemini engine. An empty model falls back to the default.
func NewGemini(apiKey, model string) *Gemini {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{APIKey: strings.TrimSpace(apiKey), Model: model}
}

func (g *Gemini) Name() string { return "gemini" }

// Analyze asks Gemini for findings in the shared JSON contract.
func (g *Gemini) Analyze(ctx context.Context, text string, protected []string) ([]model.BackendError, error) {
	if g.APIKey == "" {
		return nil, errors.New("gemini: API key is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "gemini: new client")
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userMessage(text, protected)))
	if err != nil {
		return nil, errors.Wrap(err, "gemini: generate content")
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("gemini: empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}

	block := parse.ExtractJSONBlock([]byte(b.String()))
	if block == nil {
		return nil, errors.New("gemini: no JSON object in model output")
	}
	return parse.Decode(block, g.Name())
}

func userMessage(text string, protected []string) string {
	if len(protected) == 0 {
		return "Essay:\n" + text
	}
	wordList, _ := json.Marshal(protected)
	return "protected:\n" + string(wordList) + "\n\nEssay:\n" + text
}

func ptrFloat32(f float32) *float32 { return &f }
