package mock

import (
	"context"

	"github.com/justext-go/justext"
)

var _ justext.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of justext.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, source string, paragraphs []*justext.Paragraph) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, source string, paragraphs []*justext.Paragraph) error {
	return w.WriteReportFn(ctx, source, paragraphs)
}
