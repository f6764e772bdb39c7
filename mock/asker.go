package mock

import (
	"context"

	"github.com/justext-go/justext"
)

var _ justext.Asker = (*Asker)(nil)

// Asker is a mock implementation of justext.Asker.
type Asker struct {
	AskFn func(ctx context.Context, articleText, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, articleText, question string) (string, error) {
	return a.AskFn(ctx, articleText, question)
}
