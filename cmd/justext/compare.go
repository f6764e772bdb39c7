package main

import (
	"fmt"
	"os"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/crawl"
)

// CompareCmd runs this project's classifier alongside go-trafilatura and
// go-readability against the same HTML, and reports how much their
// extracted text disagrees using the length-ratio heuristic in crawl.
type CompareCmd struct {
	File string `arg:"" optional:"" help:"Path to an HTML file. Omit when using --url."`
	URL  string `help:"Fetch HTML from this URL instead of reading File."`

	configFlags
}

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	html, err := c.loadHTML(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	cfg, stoplist, err := c.configFlags.resolve()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	paragraphs, err := justext.Classify(html, stoplist, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: classify: %v\n", err)
		return err
	}
	ownText := justext.FormatParagraphs(paragraphs)

	trafResult, trafErr := deps.Compare1.Extract(html)
	readResult, readErr := deps.Compare2.Extract(html)

	fmt.Fprintf(deps.Stdout, "this classifier: %d chars, %d good paragraphs\n", len(ownText), countGood(paragraphs))

	if trafErr != nil {
		fmt.Fprintf(deps.Stdout, "go-trafilatura: error: %v\n", trafErr)
	} else {
		fmt.Fprintf(deps.Stdout, "go-trafilatura: %d chars\n", len(trafResult.ContentHTML))
	}

	if readErr != nil {
		fmt.Fprintf(deps.Stdout, "go-readability: error: %v\n", readErr)
	} else {
		fmt.Fprintf(deps.Stdout, "go-readability: %d chars\n", len(readResult.ContentHTML))
	}

	if trafErr == nil {
		differs := crawl.ContentDiffers(ownText, trafResult.ContentHTML, noopExtractor{})
		fmt.Fprintf(deps.Stdout, "go-trafilatura longer by >50%% (or own text empty): %v\n", differs)
	}

	return nil
}

func countGood(paragraphs []*justext.Paragraph) int {
	n := 0
	for _, p := range paragraphs {
		if p.ClassType == justext.Good {
			n++
		}
	}
	return n
}

// noopExtractor treats its input as already-extracted content, letting
// CompareCmd reuse crawl.ContentDiffers' length-ratio heuristic directly
// on plain text instead of HTML.
type noopExtractor struct{}

func (noopExtractor) Extract(html string) (*justext.ExtractResult, error) {
	return &justext.ExtractResult{ContentHTML: html}, nil
}

func (c *CompareCmd) loadHTML(deps *Dependencies) (string, error) {
	if c.URL != "" {
		if deps.Fetch == nil {
			return "", fmt.Errorf("no fetcher configured for --url")
		}
		defer deps.Fetch.Close()
		return deps.Fetch.Fetch(deps.Ctx, c.URL)
	}
	if c.File == "" {
		return "", fmt.Errorf("either a file argument or --url is required")
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
