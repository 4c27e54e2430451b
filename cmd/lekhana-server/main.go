// Command lekhana-server provides the HTTP REST API for essay correction.
//
// Usage:
//
//	lekhana-server -p 8080 -mode gemini -gemini-key $GEMINI_API_KEY
//	lekhana-server -p 8080 -mode openai -llm-key $OPENAI_API_KEY
//	lekhana-server -p 8080 -mode rest -backend https://grading.example.lk
//	lekhana-server -p 8080 -mode hunspell -dict /path/to/si-dict -lang si
//	lekhana-server -p 8080 -mode gemini -gemini-key ... -db $DATABASE_URL
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/25-26J-433-RP/lekhana/internal/analysis"
	"github.com/25-26J-433-RP/lekhana/internal/local"
	"github.com/25-26J-433-RP/lekhana/internal/store"
	"github.com/25-26J-433-RP/lekhana/lekhana"
)

func main() {
	port := flag.String("p", "8080", "port to listen on")
	mode := flag.String("mode", envOr("MODE", "gemini"), "backend: gemini | openai | rest | hunspell")

	// gemini flags
	geminiKey := flag.String("gemini-key", envOr("GEMINI_API_KEY", ""), "Gemini API key (gemini mode)")
	geminiModel := flag.String("gemini-model", envOr("GEMINI_MODEL", analysis.DefaultGeminiModel), "Gemini model name")

	// openai flags
	llmKey := flag.String("llm-key", envOr("OPENAI_API_KEY", ""), "OpenAI API key (openai mode)")
	llmModel := flag.String("llm-model", envOr("LLM_MODEL", analysis.DefaultOpenAIModel), "LLM model name")
	llmURL := flag.String("llm-url", envOr("LLM_BASE_URL", analysis.DefaultOpenAIBaseURL), "OpenAI-compatible base URL")

	// rest flags
	backend := flag.String("backend", envOr("GRADING_BACKEND_URL", ""), "grading backend base URL (rest mode)")

	// hunspell flags
	dictDir := flag.String("dict", envOr("DICT_DIR", ""), "hunspell dictionary directory (hunspell mode)")
	lang := flag.String("lang", envOr("DICT_LANG", "si"), "hunspell dictionary name (hunspell mode)")

	// audit store (optional)
	dsn := flag.String("db", envOr("DATABASE_URL", ""), "Postgres DSN for the audit store (optional)")

	flag.Parse()

	switch *mode {
	case "hunspell":
		h, err := local.New(*dictDir, *lang)
		if err != nil {
			log.Fatalf("hunspell init failed: %v", err)
		}
		lekhana.Mode = "hunspell"
		lekhana.LocalHunspell = h
		log.Printf("   backend : hunspell (dict=%s/%s)\n", *dictDir, *lang)

	case "openai":
		if *llmKey == "" {
			log.Fatal("openai mode requires -llm-key or OPENAI_API_KEY env var")
		}
		lekhana.Mode = "openai"
		lekhana.Analyzer = analysis.NewOpenAI(*llmKey, *llmModel, *llmURL)
		log.Printf("   backend : openai (model=%s url=%s)\n", *llmModel, *llmURL)

	case "rest":
		if *backend == "" {
			log.Fatal("rest mode requires -backend or GRADING_BACKEND_URL env var")
		}
		lekhana.Mode = "rest"
		lekhana.Analyzer = analysis.NewREST(*backend)
		log.Printf("   backend : rest (%s)\n", *backend)

	default: // gemini
		if *geminiKey == "" {
			log.Fatal("gemini mode requires -gemini-key or GEMINI_API_KEY env var")
		}
		lekhana.Mode = "gemini"
		lekhana.Analyzer = analysis.NewGemini(*geminiKey, *geminiModel)
		log.Printf("   backend : gemini (model=%s)\n", *geminiModel)
	}

	if *dsn != "" {
		db, err := sql.Open("pgx", *dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		lekhana.Audit = store.NewAuditRepo(db)
		log.Printf("   audit   : postgres store enabled\n")
	}

	http.HandleFunc("/v1/analyze", lekhana.AnalyzeHandler)
	http.HandleFunc("/v1/apply", lekhana.ApplyHandler)
	http.HandleFunc("/v1/export", lekhana.ExportHandler)
	http.HandleFunc("/health", lekhana.HealthHandler)
	http.HandleFunc("/openapi.json", lekhana.OpenAPIHandler)
	http.HandleFunc("/", lekhana.DocsHandler)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("lekhana server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/analyze\n", *port)
	log.Printf("   POST http://localhost:%s/v1/apply\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
