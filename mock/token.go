package mock

import (
	"context"

	"github.com/justext-go/justext"
)

var _ justext.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of justext.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
