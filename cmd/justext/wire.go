package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/justext-go/justext/crawl"
	"github.com/justext-go/justext/gemini"
	lochttp "github.com/justext-go/justext/http"
	"github.com/justext-go/justext/readability"
	"github.com/justext-go/justext/rod"
	slogdecorator "github.com/justext-go/justext/slog"
	"github.com/justext-go/justext/trafilatura"
	"google.golang.org/genai"
)

// wireCommand sets up the dependencies a specific subcommand needs,
// so commands that don't touch a browser or an LLM never pay for one.
func wireCommand(cmd string, cli *CLI, deps *Dependencies) error {
	switch cmd {
	case "fetch":
		if cli.Fetch.Static {
			deps.Fetch = lochttp.NewFetcher()
			break
		}
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Fetch = fetcher
		deps.Limiter = crawl.NewDomainLimiter(1.0)

	case "classify":
		if cli.Classify.URL != "" {
			deps.Fetch = lochttp.NewFetcher()
		}

	case "annotate":
		if cli.Annotate.URL != "" {
			deps.Fetch = lochttp.NewFetcher()
		}

	case "compare":
		if cli.Compare.URL != "" {
			deps.Fetch = lochttp.NewFetcher()
		}
		deps.Compare1 = trafilatura.NewExtractor()
		deps.Compare2 = readability.NewExtractor()

	case "ask":
		if cli.Ask.URL != "" {
			deps.Fetch = lochttp.NewFetcher()
		}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Asker = gemini.NewAsker(client)
	}

	if deps.Fetch != nil {
		deps.Fetch = slogdecorator.NewLoggingFetcher(deps.Fetch, slog.Default())
	}

	return nil
}
