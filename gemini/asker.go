package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/justext-go/justext"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements justext.Asker at compile time.
var _ justext.Asker = (*Asker)(nil)

// Asker implements justext.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client) *Asker {
	return &Asker{client: client}
}

// Ask answers a natural language question about articleText, the Good
// paragraphs of one classified document.
func (a *Asker) Ask(ctx context.Context, articleText, question string) (string, error) {
	if articleText == "" {
		return "", justext.Errorf(justext.EINVALID, "article text required")
	}
	if question == "" {
		return "", justext.Errorf(justext.EINVALID, "question required")
	}

	prompt := BuildUserPrompt(articleText, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", justext.Errorf(justext.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about a single article. Answer based only on the article text provided. If the answer is not in the text, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the article text and question.
func BuildUserPrompt(articleText, question string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	sb.WriteString(articleText)
	sb.WriteString("\n</article>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
