// Package justext classifies every text paragraph of an HTML document as
// either main content or boilerplate: navigation, footers, ads, copyright
// notices, link menus. It is meant as a building block for full-page text
// extractors, invoked when structural heuristics (e.g. <article>
// detection) fail.
//
// The pipeline has four stages, applied in order by Classify: Preprocess
// strips subtrees that never contribute text; MakeParagraphs walks the
// cleaned tree into an ordered sequence of Paragraph values; classify
// assigns each paragraph a context-free label from its own features;
// revise refines those labels using neighboring paragraphs' labels.
//
// This package contains the domain types, the classification and
// revision algorithms, and the error convention used throughout this
// module. Implementations that talk to something outside the process —
// a browser, a database, an LLM, a stopword bundle, a competing
// extractor — live in subdirectories named after their primary
// dependency (e.g. sqlite/, rod/, gemini/, stoplists/).
package justext

import "strings"

// Classify runs the full pipeline — preprocessing, paragraph making,
// context-free classification, and context-sensitive revision — over
// rawHTML and returns the resulting paragraphs in document order.
func Classify(rawHTML string, stoplist map[string]struct{}, config Config) ([]*Paragraph, error) {
	doc, err := Preprocess(rawHTML)
	if err != nil {
		return nil, err
	}
	paragraphs := MakeParagraphs(doc)
	ClassifyParagraphs(paragraphs, stoplist, config)
	ReviseParagraphs(paragraphs, config)
	return paragraphs, nil
}

// ExtractText runs Classify and joins the text of every paragraph whose
// final ClassType is Good with a single newline, with no trailing
// newline.
func ExtractText(rawHTML string, stoplist map[string]struct{}, config Config) (string, error) {
	paragraphs, err := Classify(rawHTML, stoplist, config)
	if err != nil {
		return "", err
	}
	good := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p.ClassType == Good {
			good = append(good, p.Text)
		}
	}
	return strings.Join(good, "\n"), nil
}
