package gemini_test

import (
	"context"
	"testing"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenArticleTextEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil)

	_, err := asker.Ask(context.Background(), "", "what is this?")

	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	assert.Contains(t, justext.ErrorMessage(err), "article text required")
}

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil)

	_, err := asker.Ask(context.Background(), "some article text", "")

	require.Error(t, err)
	assert.Equal(t, justext.EINVALID, justext.ErrorCode(err))
	assert.Contains(t, justext.ErrorMessage(err), "question required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "helpful assistant")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsArticleText(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("HTMX is a library.", "What is HTMX?")

	assert.Contains(t, prompt, "<article>")
	assert.Contains(t, prompt, "HTMX is a library.")
	assert.Contains(t, prompt, "</article>")
}

func TestBuildUserPrompt_ContainsQuestion(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("Content", "How do I use this?")

	assert.Contains(t, prompt, "Question: How do I use this?")
}

func TestBuildUserPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("Content", "question")

	assert.NotContains(t, prompt, "You are a helpful assistant")
}
