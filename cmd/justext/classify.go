package main

import (
	"fmt"
	"os"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/bloom"
	"github.com/justext-go/justext/crawl"
	"github.com/justext-go/justext/htmltomarkdown"
	"github.com/justext-go/justext/xmlreport"
)

// ClassifyCmd runs the classification core on a file or URL's HTML and
// prints the result as plain text, Markdown, JSON, or XML.
type ClassifyCmd struct {
	File string `arg:"" optional:"" help:"Path to an HTML file. Omit when using --url or --batch."`
	URL  string `help:"Fetch HTML from this URL instead of reading File."`

	Format string   `enum:"text,markdown,json,xml" default:"text" help:"Output format."`
	Save   bool     `help:"Record this run in the run-history database."`
	Batch  []string `short:"b" help:"Classify multiple HTML files concurrently instead of a single File/--url (repeatable)."`

	configFlags
}

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	if len(c.Batch) > 0 {
		return c.runBatch(deps)
	}

	html, source, err := c.loadHTML(deps)
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

	out, err := c.render(paragraphs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: render: %v\n", err)
		return err
	}
	fmt.Fprintln(deps.Stdout, out)

	if c.Save && deps.Runs != nil {
		c.saveRun(deps, source, html, cfg, paragraphs)
	}

	return nil
}

// runBatch classifies every file in c.Batch concurrently via a
// crawl.BatchClassifier, deduplicating repeated Good paragraphs (e.g.
// identical site-wide footers) across the batch with a bloom filter.
func (c *ClassifyCmd) runBatch(deps *Dependencies) error {
	cfg, stoplist, err := c.configFlags.resolve()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", justext.ErrorMessage(err))
		return err
	}

	items := make([]crawl.BatchItem, 0, len(c.Batch))
	htmlBySource := make(map[string]string, len(c.Batch))
	for _, path := range c.Batch {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: reading %s: %v\n", path, err)
			return err
		}
		items = append(items, crawl.BatchItem{Source: path, HTML: string(data)})
		htmlBySource[path] = string(data)
	}

	batch := &crawl.BatchClassifier{
		Stoplist: stoplist,
		Config:   cfg,
		Dedup:    bloom.NewFilter(uint(len(items)*1000+1), 0.01),
	}

	results, err := batch.ClassifyAll(deps.Ctx, items)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: batch classify: %v\n", err)
		return err
	}

	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(deps.Stderr, "%s: error: %v\n", result.Source, result.Err)
			continue
		}

		out, err := c.render(result.Paragraphs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: error: render: %v\n", result.Source, err)
			continue
		}
		fmt.Fprintf(deps.Stdout, "== %s ==\n%s\n", result.Source, out)

		if c.Save && deps.Runs != nil {
			c.saveRun(deps, result.Source, htmlBySource[result.Source], cfg, result.Paragraphs)
		}
	}

	return nil
}

func (c *ClassifyCmd) saveRun(deps *Dependencies, source, html string, cfg justext.Config, paragraphs []*justext.Paragraph) {
	summary := justext.CountParagraphs(paragraphs)
	run := &justext.Run{
		Source:      source,
		ContentHash: crawl.ComputeHash(html),
		Config:      cfg,
		Summary:     summary,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to save run for %s: %s\n", source, justext.ErrorMessage(err))
	}
}

func (c *ClassifyCmd) loadHTML(deps *Dependencies) (html, source string, err error) {
	if c.URL != "" {
		if deps.Fetch == nil {
			return "", "", fmt.Errorf("no fetcher configured for --url")
		}
		defer deps.Fetch.Close()
		html, err = deps.Fetch.Fetch(deps.Ctx, c.URL)
		return html, c.URL, err
	}

	if c.File == "" {
		return "", "", fmt.Errorf("either a file argument or --url is required")
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", "", err
	}
	return string(data), c.File, nil
}

func (c *ClassifyCmd) render(paragraphs []*justext.Paragraph) (string, error) {
	switch c.Format {
	case "markdown":
		return renderMarkdown(paragraphs)
	case "json":
		return renderJSON(paragraphs)
	case "xml":
		return xmlreport.Render(paragraphs)
	default:
		return justext.FormatParagraphs(paragraphs), nil
	}
}

func renderMarkdown(paragraphs []*justext.Paragraph) (string, error) {
	conv := htmltomarkdown.NewConverter()
	var good []*justext.Paragraph
	for _, p := range paragraphs {
		if p.ClassType == justext.Good {
			good = append(good, p)
		}
	}

	var htmlBuilder string
	for _, p := range good {
		tag := "p"
		if p.Heading {
			tag = "h2"
		}
		htmlBuilder += "<" + tag + ">" + p.Text + "</" + tag + ">\n"
	}
	if htmlBuilder == "" {
		return "", nil
	}
	return conv.Convert(htmlBuilder)
}
