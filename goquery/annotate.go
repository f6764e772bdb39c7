// Package goquery re-serializes a classified document's HTML with each
// paragraph's final class_type written back onto its block-level
// container, for visual inspection of classification output in a browser.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/justext-go/justext"
)

// ClassAttr is the attribute written onto each paragraph's container.
const ClassAttr = "data-justext-class"

// Annotate parses rawHTML, writes a data-justext-class attribute onto the
// block-level element that opened each paragraph in paragraphs (matched by
// XPath), and returns the re-serialized document.
//
// Paragraphs discarded during paragraph-making (e.g. empty text) have no
// corresponding element and are simply not annotated; elements with no
// matching paragraph are left untouched.
func Annotate(rawHTML string, paragraphs []*justext.Paragraph) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", justext.Errorf(justext.EINVALID, "parse HTML: %v", err)
	}

	byXPath := make(map[string]*justext.Paragraph, len(paragraphs))
	for _, p := range paragraphs {
		byXPath[p.XPath] = p
	}

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		p, ok := byXPath[nodeXPath(sel)]
		if !ok {
			return
		}
		sel.SetAttr(ClassAttr, p.ClassType.String())
	})

	out, err := doc.Html()
	if err != nil {
		return "", justext.Errorf(justext.EINTERNAL, "render HTML: %v", err)
	}
	return out, nil
}

// nodeXPath rebuilds the slash-joined, 1-based-sibling-ordinal XPath of
// sel by walking up its ancestor chain, mirroring the path tracker used
// by the paragraph maker so that XPaths computed here match the ones
// stored on justext.Paragraph exactly.
func nodeXPath(sel *goquery.Selection) string {
	var segments []string
	for sel.Length() > 0 {
		name := goquery.NodeName(sel)
		if name == "" || strings.HasPrefix(name, "#") {
			break
		}
		idx := sel.PrevAllFiltered(name).Length() + 1
		segments = append(segments, fmt.Sprintf("/%s[%d]", name, idx))
		sel = sel.Parent()
	}

	// segments were collected innermost-first; reverse to root-first.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "")
}
