package justext

import "strings"

// FormatParagraphs renders the Good paragraphs of a classified sequence
// as readable plain text, for display or as LLM context. Headings are
// prefixed with "## "; paragraphs are separated by a blank line.
func FormatParagraphs(paragraphs []*Paragraph) string {
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p.ClassType != Good {
			continue
		}
		text := p.Text
		if p.Heading {
			text = "## " + text
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}
