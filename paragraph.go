package justext

import (
	"strings"
	"unicode/utf8"
)

// ClassType is the label assigned to a Paragraph, either by the
// context-free classifier or by the context-sensitive reviser.
type ClassType int

const (
	// Short marks a paragraph below the length_low threshold that carries
	// no link text.
	Short ClassType = iota
	// Good marks a paragraph judged to be main content.
	Good
	// NearGood marks a paragraph that is plausibly content but didn't
	// clear the thresholds for Good on its own.
	NearGood
	// Bad marks a paragraph judged to be boilerplate.
	Bad
)

// String renders a ClassType for debugging and report output.
func (c ClassType) String() string {
	switch c {
	case Short:
		return "short"
	case Good:
		return "good"
	case NearGood:
		return "neargood"
	case Bad:
		return "bad"
	default:
		return "unknown"
	}
}

// Paragraph is the unit of classification: a maximal stretch of text
// delimited by block-level tags, together with the counters and path
// information the classifier and reviser need.
type Paragraph struct {
	// Text is the final normalized plain text of the paragraph.
	Text string

	// DOMPath is the dot-joined, lowercased element path from the root to
	// this paragraph's block-level container, without sibling ordinals
	// (e.g. "html.body.div.p").
	DOMPath string

	// XPath is the slash-joined path with 1-based sibling ordinals per
	// element name (e.g. "/html[1]/body[1]/div[2]/p[1]").
	XPath string

	// WordsCount is the number of whitespace-separated tokens in Text.
	WordsCount int

	// CharsCountInLinks is the count of Text's characters that were
	// emitted while inside an <a> ancestor.
	CharsCountInLinks int

	// TagsCount is the number of inline elements encountered while
	// building this paragraph.
	TagsCount int

	// Heading is true iff DOMPath contains a token matching h[0-9].
	Heading bool

	// InitialClass is the label assigned by the context-free classifier.
	// It is never modified after classification.
	InitialClass ClassType

	// ClassType is the paragraph's current label. It starts out equal to
	// InitialClass and is refined in place by the reviser.
	ClassType ClassType
}

// LinksDensity returns the fraction of Text's characters that were
// emitted while inside a link. Returns 0 for an empty paragraph.
func (p *Paragraph) LinksDensity() float64 {
	n := utf8.RuneCountInString(p.Text)
	if n == 0 {
		return 0
	}
	return float64(p.CharsCountInLinks) / float64(n)
}

// StopwordsCount returns the number of whitespace-separated tokens of
// Text, lowercased, that belong to stoplist.
func (p *Paragraph) StopwordsCount(stoplist map[string]struct{}) int {
	count := 0
	for _, tok := range strings.Fields(p.Text) {
		if _, ok := stoplist[strings.ToLower(tok)]; ok {
			count++
		}
	}
	return count
}

// StopwordsDensity returns StopwordsCount divided by WordsCount, or 0 if
// WordsCount is 0.
func (p *Paragraph) StopwordsDensity(stoplist map[string]struct{}) float64 {
	if p.WordsCount == 0 {
		return 0
	}
	return float64(p.StopwordsCount(stoplist)) / float64(p.WordsCount)
}

// IsBoilerplate reports whether the paragraph's final label is something
// other than Good — i.e. it should be excluded from extracted text.
func (p *Paragraph) IsBoilerplate() bool {
	return p.ClassType != Good
}
