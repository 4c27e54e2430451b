// Command lekhana-cli pipes stdin (or a file) through the configured
// analysis backend and prints the pretty-printed JSON report.
//
// Usage:
//
//	echo "I has a bal." | lekhana-cli -mode openai -llm-key $OPENAI_API_KEY
//	lekhana-cli -f essay.txt -mode gemini -gemini-key $GEMINI_API_KEY
//	lekhana-cli -f essay.txt -mode hunspell -dict-dir /path/to/si-dict -lang si
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/25-26J-433-RP/lekhana/internal/analysis"
	"github.com/25-26J-433-RP/lekhana/internal/local"
	"github.com/25-26J-433-RP/lekhana/internal/model"
	"github.com/25-26J-433-RP/lekhana/internal/util"
	"github.com/25-26J-433-RP/lekhana/lekhana"
)

func main() {
	file := flag.String("f", "", "file to read instead of stdin")
	dict := flag.String("d", "", "protected-words dictionary JSON file (optional)")
	timeout := flag.Duration("t", 30*time.Second, "overall timeout")
	mode := flag.String("mode", "gemini", "backend: gemini | openai | rest | hunspell")

	geminiKey := flag.String("gemini-key", os.Getenv("GEMINI_API_KEY"), "Gemini API key")
	geminiModel := flag.String("gemini-model", analysis.DefaultGeminiModel, "Gemini model name")
	llmKey := flag.String("llm-key", os.Getenv("OPENAI_API_KEY"), "OpenAI API key")
	llmModel := flag.String("llm-model", analysis.DefaultOpenAIModel, "LLM model name")
	llmURL := flag.String("llm-url", analysis.DefaultOpenAIBaseURL, "OpenAI-compatible base URL")
	backend := flag.String("backend", os.Getenv("GRADING_BACKEND_URL"), "grading backend base URL (rest mode)")
	dictDir := flag.String("dict-dir", "", "hunspell dictionary directory (hunspell mode)")
	lang := flag.String("lang", "si", "hunspell dictionary name (hunspell mode)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		must(err)
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	must(err)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	text := string(data)

	var d *lekhana.Dict
	if *dict != "" {
		d, err = lekhana.LoadDict(*dict)
		must(err)
	}

	var res *model.Report

	switch *mode {
	case "hunspell":
		h, herr := local.New(*dictDir, *lang)
		must(herr)
		res, err = lekhana.CheckLocalWithDict(ctx, text, h, d)
	case "openai":
		res, err = lekhana.CheckWithDict(ctx, analysis.NewOpenAI(*llmKey, *llmModel, *llmURL), text, d)
	case "rest":
		res, err = lekhana.CheckWithDict(ctx, analysis.NewREST(*backend), text, d)
	default: // gemini
		res, err = lekhana.CheckWithDict(ctx, analysis.NewGemini(*geminiKey, *geminiModel), text, d)
	}
	must(err)

	out, _ := util.MarshalNoEscape(res, true)
	fmt.Println(string(out))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "lekhana-cli:", err)
		os.Exit(1)
	}
}
