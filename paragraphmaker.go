package justext

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// blockTags is the set of element names that open and close a paragraph.
var blockTags = map[string]struct{}{
	"body": {}, "blockquote": {}, "caption": {}, "center": {}, "col": {},
	"colgroup": {}, "dd": {}, "div": {}, "dl": {}, "dt": {}, "fieldset": {},
	"form": {}, "legend": {}, "optgroup": {}, "option": {}, "p": {}, "pre": {},
	"table": {}, "td": {}, "textarea": {}, "tfoot": {}, "th": {}, "thead": {},
	"tr": {}, "ul": {}, "li": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

// pathEntry is one open element on the path tracker's stack.
type pathEntry struct {
	name    string
	ordinal int
}

// pathTracker maintains the current open-element stack, assigning each
// entered element a 1-based sibling ordinal among same-named siblings at
// its depth.
type pathTracker struct {
	stack  []pathEntry
	counts []map[string]int
}

func newPathTracker() *pathTracker {
	return &pathTracker{counts: []map[string]int{{}}}
}

func (pt *pathTracker) enter(name string) {
	top := len(pt.counts) - 1
	pt.counts[top][name]++
	pt.stack = append(pt.stack, pathEntry{name: name, ordinal: pt.counts[top][name]})
	pt.counts = append(pt.counts, map[string]int{})
}

func (pt *pathTracker) leave() {
	pt.stack = pt.stack[:len(pt.stack)-1]
	pt.counts = pt.counts[:len(pt.counts)-1]
}

func (pt *pathTracker) domPath() string {
	names := make([]string, len(pt.stack))
	for i, e := range pt.stack {
		names[i] = e.name
	}
	return strings.Join(names, ".")
}

func (pt *pathTracker) xpath() string {
	var b strings.Builder
	for _, e := range pt.stack {
		b.WriteByte('/')
		b.WriteString(e.name)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.ordinal))
		b.WriteByte(']')
	}
	return b.String()
}

// normalizeWhitespace collapses whitespace runs: a run containing a \n or
// \r becomes a single \n; any other whitespace run, including U+00A0 and
// U+202F, becomes a single ordinary space.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
			i++
			continue
		}
		hasNewline := false
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			if runes[j] == '\n' || runes[j] == '\r' {
				hasNewline = true
			}
			j++
		}
		if hasNewline {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		i = j
	}
	return b.String()
}

// accumulator collects the raw fragments of the paragraph currently being
// built, along with its counters and the path snapshot taken when it was
// opened.
type accumulator struct {
	fragments    []string
	tagsCount    int
	charsInLinks int
	domPath      string
	xpath        string
}

func newAccumulator(domPath, xpath string) *accumulator {
	return &accumulator{domPath: domPath, xpath: xpath}
}

func (a *accumulator) appendText(s string, inLink bool) {
	a.fragments = append(a.fragments, s)
	if inLink {
		a.charsInLinks += utf8.RuneCountInString(s)
	}
}

// build produces the emitted Paragraph, or nil if the accumulator never
// received any text fragment at all.
func (a *accumulator) build() *Paragraph {
	if len(a.fragments) == 0 {
		return nil
	}
	text := normalizeWhitespace(strings.TrimSpace(strings.Join(a.fragments, "")))
	return &Paragraph{
		Text:              text,
		DOMPath:           a.domPath,
		XPath:             a.xpath,
		WordsCount:        len(strings.Fields(text)),
		CharsCountInLinks: a.charsInLinks,
		TagsCount:         a.tagsCount,
		Heading:           isHeading(a.domPath),
	}
}

// isHeading reports whether domPath, tokenized on '.', contains a token
// matching exactly "h" followed by one decimal digit.
func isHeading(domPath string) bool {
	for _, tok := range strings.Split(domPath, ".") {
		if len(tok) == 2 && tok[0] == 'h' && tok[1] >= '0' && tok[1] <= '9' {
			return true
		}
	}
	return false
}

// maker walks a cleaned document tree and cuts it into paragraphs.
type maker struct {
	pt        *pathTracker
	cur       *accumulator
	linkDepth int
	brPending bool
	out       []*Paragraph
}

// MakeParagraphs walks doc (as produced by Preprocess) and returns the
// ordered sequence of paragraphs it contains.
func MakeParagraphs(doc *html.Node) []*Paragraph {
	m := &maker{pt: newPathTracker()}
	m.cur = newAccumulator(m.pt.domPath(), m.pt.xpath())
	m.walk(doc)
	m.flush()
	if m.out == nil {
		return []*Paragraph{}
	}
	return m.out
}

func (m *maker) walk(n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		name := strings.ToLower(n.Data)
		m.enter(name)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			m.walk(c)
		}
		m.leave(name)
	case html.TextNode:
		m.text(n.Data)
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			m.walk(c)
		}
	}
}

func (m *maker) flush() {
	if p := m.cur.build(); p != nil {
		m.out = append(m.out, p)
	}
}

// enter handles an opening tag. <br> never touches the path tracker, so
// the paragraph opened by a <br><br> pair takes the enclosing element's
// path and br cannot appear in a dom_path or xpath.
func (m *maker) enter(name string) {
	if name == "br" {
		if m.brPending {
			m.flush()
			if len(m.out) > 0 {
				m.out[len(m.out)-1].TagsCount--
			}
			m.cur = newAccumulator(m.pt.domPath(), m.pt.xpath())
			m.brPending = false
		} else {
			m.cur.appendText(" ", m.linkDepth > 0)
			m.cur.tagsCount++
			m.brPending = true
		}
		return
	}

	m.pt.enter(name)

	switch {
	case isBlockTag(name):
		m.flush()
		m.cur = newAccumulator(m.pt.domPath(), m.pt.xpath())
		m.brPending = false
	case name == "a":
		m.linkDepth++
		m.cur.tagsCount++
	default:
		m.cur.tagsCount++
	}
}

// leave handles a closing tag. The path tracker is popped before a new
// accumulator is opened, so a paragraph started right after closing a
// block element sees the parent's path, not the closing element's own.
func (m *maker) leave(name string) {
	if name == "br" {
		return
	}

	m.pt.leave()

	switch {
	case isBlockTag(name):
		m.flush()
		m.cur = newAccumulator(m.pt.domPath(), m.pt.xpath())
		m.brPending = false
	case name == "a":
		m.linkDepth--
	}
}

func (m *maker) text(raw string) {
	normalized := normalizeWhitespace(raw)
	if strings.TrimSpace(normalized) == "" {
		return
	}
	m.cur.appendText(normalized, m.linkDepth > 0)
	m.brPending = false
}

func isBlockTag(name string) bool {
	_, ok := blockTags[name]
	return ok
}
