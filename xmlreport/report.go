// Package xmlreport renders a classified document's paragraphs as an XML
// report, one <paragraph> element per paragraph, carrying its class,
// XPath, word count, and text — the natural consumer of the XPath field
// the paragraph maker already computes.
package xmlreport

import (
	"context"
	"strconv"

	"github.com/beevik/etree"
	"github.com/justext-go/justext"
)

// Render builds the <paragraphs> XML document for paragraphs and returns
// it as an indented string.
func Render(paragraphs []*justext.Paragraph) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("paragraphs")
	for _, p := range paragraphs {
		el := root.CreateElement("paragraph")
		el.CreateAttr("class", p.ClassType.String())
		el.CreateAttr("xpath", p.XPath)
		el.CreateAttr("words", strconv.Itoa(p.WordsCount))
		if p.Heading {
			el.CreateAttr("heading", "true")
		}
		el.SetText(p.Text)
	}

	doc.Indent(2)
	return doc.WriteToString()
}

// Ensure Writer implements justext.ReportWriter at compile time; it is
// registered separately because WriteReport needs a destination, not
// just the rendered string Render produces.
var _ justext.ReportWriter = (*Writer)(nil)

// Writer writes XML classification reports via an injected sink function,
// keeping this package free of any opinion about where reports land
// (stdout, a file, an HTTP response).
type Writer struct {
	// Sink is called with the source document and its rendered XML.
	Sink func(source, xml string) error
}

// NewWriter creates a new Writer that calls sink for each report.
func NewWriter(sink func(source, xml string) error) *Writer {
	return &Writer{Sink: sink}
}

// WriteReport renders paragraphs as XML and passes it to w.Sink.
func (w *Writer) WriteReport(_ context.Context, source string, paragraphs []*justext.Paragraph) error {
	xml, err := Render(paragraphs)
	if err != nil {
		return err
	}
	return w.Sink(source, xml)
}
