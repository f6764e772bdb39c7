package justext

import "context"

// ReportWriter persists the classified paragraphs of a single document as a
// human-readable report, keyed by the document's source (a URL or file path).
type ReportWriter interface {
	WriteReport(ctx context.Context, source string, paragraphs []*Paragraph) error
}
