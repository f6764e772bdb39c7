package justext_test

import (
	"strings"
	"testing"

	"github.com/justext-go/justext"
	"github.com/stretchr/testify/assert"
)

func para(text string, class justext.ClassType) *justext.Paragraph {
	return &justext.Paragraph{
		Text:         text,
		InitialClass: class,
		ClassType:    class,
	}
}

func TestReviseParagraphs(t *testing.T) {
	t.Parallel()

	config := justext.DefaultConfig()

	t.Run("Short between two Good paragraphs becomes Good", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("good one", justext.Good),
			para("short", justext.Short),
			para("good two", justext.Good),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Good, paragraphs[1].ClassType)
	})

	t.Run("Short between two Bad paragraphs becomes Bad", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("bad one", justext.Bad),
			para("short", justext.Short),
			para("bad two", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Bad, paragraphs[1].ClassType)
	})

	t.Run("Short at the start of the document defaults its missing neighbor to Bad", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("short", justext.Short),
			para("bad one", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Bad, paragraphs[0].ClassType)
	})

	t.Run("mixed Short neighbors resolve via the re-query rule", func(t *testing.T) {
		t.Parallel()

		// prev (ignoring NearGood) is Good; next (ignoring NearGood) skips
		// past the NearGood to the trailing Bad. The re-query on the Bad
		// side, without ignoring NearGood, finds the NearGood paragraph and
		// promotes the Short paragraph to Good instead of Bad.
		paragraphs := []*justext.Paragraph{
			para("good", justext.Good),
			para("short", justext.Short),
			para("near good", justext.NearGood),
			para("bad", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Good, paragraphs[1].ClassType)
	})

	t.Run("stage 2 is batched against a frozen snapshot", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("good", justext.Good),
			para("short one", justext.Short),
			para("short two", justext.Short),
			para("bad", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		// Each Short paragraph's neighbor lookup skips the other Short
		// paragraph (Short is always skipped), landing on the real Good and
		// Bad neighbors at the document's ends -- a mixed result that
		// re-queries to Bad on both, since neither neighbor is NearGood.
		assert.Equal(t, justext.Bad, paragraphs[1].ClassType)
		assert.Equal(t, justext.Bad, paragraphs[2].ClassType)
	})

	t.Run("NearGood surrounded by Bad becomes Bad", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("bad one", justext.Bad),
			para("near good", justext.NearGood),
			para("bad two", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Bad, paragraphs[1].ClassType)
	})

	t.Run("NearGood with at least one Good neighbor becomes Good", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("good one", justext.Good),
			para("near good", justext.NearGood),
			para("bad two", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Good, paragraphs[1].ClassType)
	})

	t.Run("stage 3 applies immediately so a later NearGood sees an already-resolved neighbor", func(t *testing.T) {
		t.Parallel()

		paragraphs := []*justext.Paragraph{
			para("good", justext.Good),
			para("near good one", justext.NearGood),
			para("near good two", justext.NearGood),
			para("bad", justext.Bad),
		}
		justext.ReviseParagraphs(paragraphs, config)

		// near good one resolves to Good (neighbor of Good) before near good
		// two is evaluated, so near good two also sees a Good neighbor.
		assert.Equal(t, justext.Good, paragraphs[1].ClassType)
		assert.Equal(t, justext.Good, paragraphs[2].ClassType)
	})

	t.Run("a short heading near a Good paragraph is promoted to NearGood then resolved to Good", func(t *testing.T) {
		t.Parallel()

		heading := para("Title", justext.Short)
		heading.Heading = true
		paragraphs := []*justext.Paragraph{
			heading,
			para(strings.Repeat("x", 10), justext.Good),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Good, paragraphs[0].ClassType)
	})

	t.Run("a heading beyond max_heading_distance is not promoted", func(t *testing.T) {
		t.Parallel()

		narrow := config
		narrow.MaxHeadingDistance = 5

		heading := para("Title", justext.Short)
		heading.Heading = true
		filler := para(strings.Repeat("y", 50), justext.Bad)
		paragraphs := []*justext.Paragraph{
			heading,
			filler,
			para(strings.Repeat("x", 10), justext.Good),
		}
		justext.ReviseParagraphs(paragraphs, narrow)

		assert.Equal(t, justext.Bad, paragraphs[0].ClassType)
	})

	t.Run("a Bad heading whose initial class was never Bad is promoted to Good when a Good paragraph is near", func(t *testing.T) {
		t.Parallel()

		heading := para("Title", justext.NearGood)
		heading.Heading = true
		// Surrounded by Bad on both sides so stage 3 resolves it to Bad;
		// stage 4 then sees InitialClass (NearGood) was never Bad and
		// promotes it straight to Good, since a Good paragraph lies within
		// max_heading_distance.
		paragraphs := []*justext.Paragraph{
			para("bad before", justext.Bad),
			heading,
			para("bad between", justext.Bad),
			para(strings.Repeat("x", 10), justext.Good),
		}
		justext.ReviseParagraphs(paragraphs, config)

		assert.Equal(t, justext.Good, paragraphs[1].ClassType)
	})

	t.Run("no_headings disables heading promotion stages", func(t *testing.T) {
		t.Parallel()

		noHeadings := config
		noHeadings.NoHeadings = true

		heading := para("Title", justext.Short)
		heading.Heading = true
		paragraphs := []*justext.Paragraph{
			heading,
			para(strings.Repeat("x", 10), justext.Good),
		}
		justext.ReviseParagraphs(paragraphs, noHeadings)

		// With promotion disabled, the heading is resolved purely as an
		// ordinary Short paragraph: its only real neighbor is Good, but its
		// missing backward neighbor defaults to Bad, so the mixed-neighbor
		// re-query (finding no NearGood) settles it as Bad.
		assert.Equal(t, justext.Bad, paragraphs[0].ClassType)
	})
}
