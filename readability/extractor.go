package readability

import (
	"strings"

	"github.com/justext-go/justext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements justext.Extractor at compile time.
var _ justext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*justext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, justext.Errorf(justext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &justext.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
