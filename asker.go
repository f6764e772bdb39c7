package justext

import "context"

// Asker provides natural language question answering over a single
// document's already-extracted content.
type Asker interface {
	// Ask answers a question about articleText, the Good-paragraph text
	// of one classified document.
	Ask(ctx context.Context, articleText string, question string) (string, error)
}
