package justext

import (
	"strings"
	"unicode/utf8"
)

// ClassifyParagraphs assigns each paragraph's InitialClass and ClassType
// using only that paragraph's own features: link density, the presence of
// a copyright mark, whether it sits inside a <select>, its length, and
// its stopword density. Order of the branches matters — the first match
// wins.
func ClassifyParagraphs(paragraphs []*Paragraph, stoplist map[string]struct{}, config Config) {
	for _, p := range paragraphs {
		p.Heading = p.Heading && !config.NoHeadings

		length := utf8.RuneCountInString(p.Text)
		linkDensity := p.LinksDensity()
		stopwordDensity := p.StopwordsDensity(stoplist)

		var class ClassType
		switch {
		case linkDensity > config.MaxLinkDensity:
			class = Bad
		case strings.ContainsRune(p.Text, '©') || strings.Contains(p.Text, "&copy"):
			class = Bad
		case strings.Contains(p.DOMPath, "select"):
			class = Bad
		case length < config.LengthLow:
			if p.CharsCountInLinks > 0 {
				class = Bad
			} else {
				class = Short
			}
		case stopwordDensity >= config.StopwordsHigh:
			if length > config.LengthHigh {
				class = Good
			} else {
				class = NearGood
			}
		case stopwordDensity >= config.StopwordsLow:
			class = NearGood
		default:
			class = Bad
		}

		p.InitialClass = class
		p.ClassType = class
	}
}
