package mock

import (
	"context"

	"github.com/justext-go/justext"
)

var _ justext.RunStore = (*RunStore)(nil)

// RunStore is a mock implementation of justext.RunStore.
type RunStore struct {
	CreateRunFn   func(ctx context.Context, run *justext.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*justext.Run, error)
	FindRunsFn    func(ctx context.Context, limit, offset int) ([]*justext.Run, error)
}

func (s *RunStore) CreateRun(ctx context.Context, run *justext.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunStore) FindRunByID(ctx context.Context, id string) (*justext.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunStore) FindRuns(ctx context.Context, limit, offset int) ([]*justext.Run, error) {
	return s.FindRunsFn(ctx, limit, offset)
}
