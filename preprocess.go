package justext

import (
	"strings"

	"golang.org/x/net/html"
)

// removeTags are the element kinds stripped, together with all their
// descendants, before paragraph making ever sees the tree.
var removeTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"head":     {},
	"form":     {},
	"input":    {},
	"button":   {},
	"select":   {},
	"textarea": {},
	"embed":    {},
	"object":   {},
	"applet":   {},
}

// Preprocess parses rawHTML and strips subtrees that never contribute
// text paragraphs (script, style, head, form controls, embedded objects)
// along with every comment node, preserving the order of what remains.
func Preprocess(rawHTML string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}
	stripSubtrees(doc)
	return doc, nil
}

func stripSubtrees(n *html.Node) {
	child := n.FirstChild
	for child != nil {
		next := child.NextSibling
		if shouldStrip(child) {
			n.RemoveChild(child)
		} else {
			stripSubtrees(child)
		}
		child = next
	}
}

func shouldStrip(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode:
		return true
	case html.ElementNode:
		_, ok := removeTags[strings.ToLower(n.Data)]
		return ok
	default:
		return false
	}
}
