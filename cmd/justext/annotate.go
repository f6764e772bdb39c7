package main

import (
	"fmt"
	"os"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/goquery"
)

// AnnotateCmd writes the original HTML back out with each paragraph's
// final class_type injected as a data-justext-class attribute, for
// visual inspection of classification output in a browser.
type AnnotateCmd struct {
	File string `arg:"" optional:"" help:"Path to an HTML file. Omit when using --url."`
	URL  string `help:"Fetch HTML from this URL instead of reading File."`
	Out  string `short:"o" help:"Write annotated HTML to this file instead of stdout."`

	configFlags
}

// Run executes the annotate command.
func (c *AnnotateCmd) Run(deps *Dependencies) error {
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

	annotated, err := goquery.Annotate(html, paragraphs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: annotate: %v\n", err)
		return err
	}

	if c.Out != "" {
		return os.WriteFile(c.Out, []byte(annotated), 0644)
	}
	fmt.Fprintln(deps.Stdout, annotated)
	return nil
}

func (c *AnnotateCmd) loadHTML(deps *Dependencies) (string, error) {
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
