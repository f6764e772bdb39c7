// Package fs provides file-based storage for classification reports.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/justext-go/justext"
)

// URLToPath converts a document source (URL or file path) to a relative
// report file path. Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path
	if path == "" && u.Host == "" {
		path = rawURL
	}

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// FormatReport renders a classified document as Markdown with a frontmatter
// block summarizing the paragraph counts per class.
func FormatReport(source string, paragraphs []*justext.Paragraph) string {
	summary := justext.CountParagraphs(paragraphs)

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(source)
	b.WriteString("\ngood: ")
	b.WriteString(strconv.Itoa(summary.Good))
	b.WriteString("\nnear_good: ")
	b.WriteString(strconv.Itoa(summary.NearGood))
	b.WriteString("\nshort: ")
	b.WriteString(strconv.Itoa(summary.Short))
	b.WriteString("\nbad: ")
	b.WriteString(strconv.Itoa(summary.Bad))
	b.WriteString("\n---\n\n")
	b.WriteString(justext.FormatParagraphs(paragraphs))
	return b.String()
}

// Ensure Writer implements justext.ReportWriter at compile time.
var _ justext.ReportWriter = (*Writer)(nil)

// Writer writes classification reports as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport writes a classified document's report to disk.
func (w *Writer) WriteReport(ctx context.Context, source string, paragraphs []*justext.Paragraph) error {
	if source == "" {
		return justext.Errorf(justext.EINVALID, "source required")
	}

	relPath, err := URLToPath(source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatReport(source, paragraphs)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
