package mock

import (
	"context"

	"github.com/justext-go/justext"
)

var _ justext.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of justext.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
