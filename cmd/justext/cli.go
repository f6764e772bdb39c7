package main

import (
	"context"
	"io"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/crawl"
	"github.com/justext-go/justext/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	DB    *sqlite.DB
	Runs  justext.RunStore
	Fetch justext.Fetcher // wired per-command: rod for "fetch", http for "fetch --static"

	Limiter  *crawl.DomainLimiter
	Asker    justext.Asker
	Compare1 justext.Extractor // go-trafilatura
	Compare2 justext.Extractor // go-readability
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch     FetchCmd     `cmd:"" help:"Fetch HTML for a URL"`
	Classify  ClassifyCmd  `cmd:"" help:"Classify a document's paragraphs"`
	Annotate  AnnotateCmd  `cmd:"" help:"Write classified HTML back out with class attributes"`
	Compare   CompareCmd   `cmd:"" help:"Compare this classifier against go-trafilatura and go-readability"`
	Ask       AskCmd       `cmd:"" help:"Ask a question about a document's extracted content"`
	Runs      RunsCmd      `cmd:"" help:"Inspect past classification runs"`
	Languages LanguagesCmd `cmd:"" help:"List or print bundled stopword catalogs"`
}

// configFlags mirrors justext.Config as Kong-parseable flags, overriding
// DefaultConfig() field by field.
type configFlags struct {
	Language           string  `help:"Stopword language name, or empty for no stoplist (language-independent mode also needs --stopwords-low=0 --stopwords-high=0)." default:"English"`
	LengthLow          int     `help:"Character threshold for a Short paragraph." default:"70"`
	LengthHigh         int     `help:"Character threshold for Good on its own." default:"200"`
	StopwordsLow       float64 `help:"Minimum stopword density for NearGood." default:"0.30"`
	StopwordsHigh      float64 `help:"Minimum stopword density for Good/NearGood." default:"0.32"`
	MaxLinkDensity     float64 `help:"Link density above which a paragraph is Bad." default:"0.20"`
	MaxHeadingDistance int     `help:"Character window for heading promotion." default:"200"`
	NoHeadings         bool    `help:"Disable heading-aware promotion."`
}

// resolve builds a justext.Config and stoplist from the flags.
func (f *configFlags) resolve() (justext.Config, map[string]struct{}, error) {
	cfg := justext.DefaultConfig()
	cfg.LengthLow = f.LengthLow
	cfg.LengthHigh = f.LengthHigh
	cfg.StopwordsLow = f.StopwordsLow
	cfg.StopwordsHigh = f.StopwordsHigh
	cfg.MaxLinkDensity = f.MaxLinkDensity
	cfg.MaxHeadingDistance = f.MaxHeadingDistance
	cfg.NoHeadings = f.NoHeadings

	if f.Language == "" {
		return cfg, map[string]struct{}{}, nil
	}

	stoplist, err := stoplistFor(f.Language)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, stoplist, nil
}
