package justext

import (
	"context"
	"time"
)

// RunSummary holds the per-class paragraph counts produced by a single
// classification run.
type RunSummary struct {
	Good     int
	NearGood int
	Short    int
	Bad      int
}

// CountParagraphs tallies paragraphs by class into a RunSummary.
func CountParagraphs(paragraphs []*Paragraph) RunSummary {
	var s RunSummary
	for _, p := range paragraphs {
		switch p.ClassType {
		case Good:
			s.Good++
		case NearGood:
			s.NearGood++
		case Short:
			s.Short++
		case Bad:
			s.Bad++
		}
	}
	return s
}

// Run records one invocation of the classifier against a specific input,
// persisted with its config and summary counts for later retrieval.
type Run struct {
	ID          string
	Source      string
	ContentHash string
	Config      Config
	Summary     RunSummary
	CreatedAt   time.Time
}

// RunStore persists and retrieves classification runs.
type RunStore interface {
	CreateRun(ctx context.Context, run *Run) error
	FindRunByID(ctx context.Context, id string) (*Run, error)
	FindRuns(ctx context.Context, limit, offset int) ([]*Run, error)
}
