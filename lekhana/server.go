package lekhana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/25-26J-433-RP/lekhana/internal/analysis"
	"github.com/25-26J-433-RP/lekhana/internal/local"
	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/store"
	"github.com/25-26J-433-RP/lekhana/internal/util"
)

// Mode selects the analysis backend: "gemini" | "openai" | "rest" | "hunspell".
var Mode = "gemini"

// Analyzer is the shared remote engine used unless Mode == "hunspell".
var Analyzer analysis.Engine

// LocalHunspell is the shared hunspell process used when Mode == "hunspell".
var LocalHunspell *local.Hunspell

// Audit is the optional audit store behind POST /v1/export.
var Audit *store.AuditRepo

// AnalyzeRequest is the HTTP request body for /v1/analyze.
type AnalyzeRequest struct {
	Text    string   `json:"text"`              // essay text (required)
	Words   []string `json:"words,omitempty"`   // inline protected words (optional)
	Dict    *Dict    `json:"dict,omitempty"`    // user dictionary {"words":[...]} (optional)
	Timeout int      `json:"timeout,omitempty"` // seconds, default 30 (hunspell: 8)
}

// AnalyzeHandler handles POST /v1/analyze requests.
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	defaultTimeout := 30 * time.Second
	if Mode == "hunspell" {
		defaultTimeout = 8 * time.Second
	}
	timeout := defaultTimeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var dict *Dict
	if len(req.Words) > 0 || (req.Dict != nil && len(req.Dict.Words) > 0) {
		dict = NewDict(req.Words...)
		if req.Dict != nil {
			dict.Words = append(dict.Words, req.Dict.Words...)
		}
	}

	var res *model.Report
	var err error

	switch Mode {
	case "hunspell":
		if LocalHunspell == nil {
			http.Error(w, "hunspell mode: checker not initialized", http.StatusInternalServerError)
			return
		}
		res, err = CheckLocalWithDict(ctx, req.Text, LocalHunspell, dict)
	default:
		if Analyzer == nil {
			http.Error(w, Mode+" mode: engine not initialized", http.StatusInternalServerError)
			return
		}
		res, err = CheckWithDict(ctx, Analyzer, req.Text, dict)
	}

	if err != nil {
		http.Error(w, fmt.Sprintf("Analyze failed: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, res)
}

// ApplyRequest is the HTTP request body for /v1/apply.
type ApplyRequest struct {
	Text        string             `json:"text"`
	Corrections []model.Correction `json:"corrections"`
}

// ApplyResponse is the HTTP response body for /v1/apply.
type ApplyResponse struct {
	Corrected string `json:"corrected"`
}

// ApplyHandler handles POST /v1/apply requests: it applies accepted
// corrections (positional or word-identity) to the given text.
func ApplyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	corrected, err := ApplyCorrections(req.Text, req.Corrections)
	if err != nil {
		// Overlap, out-of-bounds, and mixed forms are caller contract
		// violations, not server faults.
		http.Error(w, fmt.Sprintf("Apply failed: %v", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, ApplyResponse{Corrected: corrected})
}

// ExportRequest is the HTTP request body for /v1/export.
type ExportRequest struct {
	EssayID     string                   `json:"essay_id"`
	FinalText   string                   `json:"final_text"`
	Corrections []model.CorrectionRecord `json:"corrections"`
}

// ExportHandler handles POST /v1/export: it persists the reviewed final text
// plus the derived correction records for audit / training-data export.
func ExportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if Audit == nil {
		http.Error(w, "export: audit store not configured", http.StatusServiceUnavailable)
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.EssayID == "" {
		http.Error(w, "essay_id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Audit.Save(ctx, req.EssayID, req.FinalText, req.Corrections); err != nil {
		http.Error(w, fmt.Sprintf("Export failed: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok", "essay_id": req.EssayID})
}

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "lekhana",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

// writeJSON emits v without HTML escaping, so Sinhala explanations with
// markup survive intact.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(v, true)
	fmt.Fprint(w, string(out))
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Lekhana API",
    "description": "Sinhala essay correction REST API: word-error analysis, correction application, and review export.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/analyze": {
      "post": {
        "summary": "Analyze essay",
        "description": "Runs the configured analysis backend over the essay and returns the reviewable token sequence plus an all-accepted corrected preview. Protected words are never flagged.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/AnalyzeRequest" },
              "examples": {
                "basic": { "value": { "text": "I has a bal." } },
                "protected words": { "value": { "text": "mage nama Nimal.", "words": ["Nimal"] } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Analysis report",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Report" }
              }
            }
          },
          "400": { "description": "Bad request (JSON parse error)" },
          "500": { "description": "Backend failure" }
        }
      }
    },
    "/v1/apply": {
      "post": {
        "summary": "Apply corrections",
        "description": "Applies accepted corrections to the text. Corrections either all carry rune-offset positions (applied back to front) or none do (matched by word identity). Overlapping or out-of-bounds spans are rejected.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/ApplyRequest" }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Patched text",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/ApplyResponse" }
              }
            }
          },
          "400": { "description": "Invalid spans or mixed correction forms" }
        }
      }
    },
    "/v1/export": {
      "post": {
        "summary": "Export review outcome",
        "description": "Persists the reviewed final text and the derived {original, corrected, pattern} records for audit and training-data export.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/ExportRequest" }
            }
          }
        },
        "responses": {
          "200": { "description": "Stored" },
          "503": { "description": "Audit store not configured" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service healthy",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "lekhana" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "AnalyzeRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":    { "type": "string", "description": "Essay text" },
          "words":   { "type": "array", "items": { "type": "string" }, "description": "Inline protected words" },
          "dict":    { "$ref": "#/components/schemas/Dict" },
          "timeout": { "type": "integer", "description": "Timeout in seconds" }
        }
      },
      "Dict": {
        "type": "object",
        "properties": {
          "words": { "type": "array", "items": { "type": "string" } }
        }
      },
      "Report": {
        "type": "object",
        "properties": {
          "original":     { "type": "string" },
          "corrected":    { "type": "string", "description": "Text with every suggestion accepted" },
          "editDistance": { "type": "integer" },
          "charCount":    { "type": "integer" },
          "errorCount":   { "type": "integer" },
          "tokens":       { "type": "array", "items": { "$ref": "#/components/schemas/Token" } },
          "corrections":  { "type": "array", "items": { "$ref": "#/components/schemas/CorrectionRecord" } }
        }
      },
      "Token": {
        "type": "object",
        "properties": {
          "id":          { "type": "integer" },
          "original":    { "type": "string" },
          "display":     { "type": "string" },
          "corrected":   { "type": "string" },
          "kind":        { "type": "string", "enum": ["word", "whitespace"] },
          "state":       { "type": "string", "enum": ["flagged", "corrected", "ignored"] },
          "pattern":     { "type": "string" },
          "explanation": { "type": "string" },
          "confidence":  { "type": "number" },
          "source":      { "type": "string" }
        }
      },
      "ApplyRequest": {
        "type": "object",
        "required": ["text", "corrections"],
        "properties": {
          "text":        { "type": "string" },
          "corrections": { "type": "array", "items": { "$ref": "#/components/schemas/Correction" } }
        }
      },
      "Correction": {
        "type": "object",
        "required": ["word", "suggestion", "accepted"],
        "properties": {
          "word":       { "type": "string" },
          "suggestion": { "type": "string" },
          "pattern":    { "type": "string" },
          "confidence": { "type": "number" },
          "accepted":   { "type": "boolean" },
          "position": {
            "type": "object",
            "properties": {
              "start": { "type": "integer", "description": "Inclusive rune offset" },
              "end":   { "type": "integer", "description": "Exclusive rune offset" }
            }
          }
        }
      },
      "ApplyResponse": {
        "type": "object",
        "properties": {
          "corrected": { "type": "string" }
        }
      },
      "ExportRequest": {
        "type": "object",
        "required": ["essay_id", "final_text"],
        "properties": {
          "essay_id":    { "type": "string" },
          "final_text":  { "type": "string" },
          "corrections": { "type": "array", "items": { "$ref": "#/components/schemas/CorrectionRecord" } }
        }
      },
      "CorrectionRecord": {
        "type": "object",
        "properties": {
          "original":  { "type": "string" },
          "corrected": { "type": "string" },
          "pattern":   { "type": "string" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Lekhana API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
