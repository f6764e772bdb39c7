package main

import (
	"fmt"
	"os"

	"github.com/justext-go/justext"
)

// AskCmd answers a question about a single document's extracted
// Good-paragraph text via the configured Asker.
type AskCmd struct {
	File     string `arg:"" optional:"" help:"Path to an HTML file. Omit when using --url."`
	Question string `arg:"" help:"Question to ask about the document."`
	URL      string `help:"Fetch HTML from this URL instead of reading File."`

	configFlags
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
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

	articleText, err := justext.ExtractText(html, stoplist, cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: classify: %v\n", err)
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, articleText, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

func (c *AskCmd) loadHTML(deps *Dependencies) (string, error) {
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
