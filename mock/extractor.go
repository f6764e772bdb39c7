package mock

import "github.com/justext-go/justext"

var _ justext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of justext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*justext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*justext.ExtractResult, error) {
	return e.ExtractFn(html)
}
