package xmlreport_test

import (
	"context"
	"testing"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/xmlreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	paragraphs := []*justext.Paragraph{
		{Text: "Title", XPath: "/html[1]/body[1]/h2[1]", WordsCount: 1, Heading: true, ClassType: justext.Good},
		{Text: "Body text", XPath: "/html[1]/body[1]/p[1]", WordsCount: 2, ClassType: justext.Bad},
	}

	out, err := xmlreport.Render(paragraphs)
	require.NoError(t, err)

	assert.Contains(t, out, `<paragraphs>`)
	assert.Contains(t, out, `class="good"`)
	assert.Contains(t, out, `class="bad"`)
	assert.Contains(t, out, `xpath="/html[1]/body[1]/h2[1]"`)
	assert.Contains(t, out, `heading="true"`)
	assert.Contains(t, out, `>Title</paragraph>`)
	assert.Contains(t, out, `>Body text</paragraph>`)
}

func TestWriter_WriteReport(t *testing.T) {
	t.Parallel()

	var gotSource, gotXML string
	w := xmlreport.NewWriter(func(source, xml string) error {
		gotSource = source
		gotXML = xml
		return nil
	})

	paragraphs := []*justext.Paragraph{
		{Text: "Hello", XPath: "/html[1]/body[1]/p[1]", WordsCount: 1, ClassType: justext.Good},
	}

	err := w.WriteReport(context.Background(), "doc.html", paragraphs)
	require.NoError(t, err)
	assert.Equal(t, "doc.html", gotSource)
	assert.Contains(t, gotXML, "Hello")
}
