package crawl

import (
	"context"
	"sync"

	"github.com/justext-go/justext"
	"github.com/justext-go/justext/bloom"
	"golang.org/x/sync/errgroup"
)

// BatchItem is one document submitted to BatchClassifier.ClassifyAll.
type BatchItem struct {
	Source string
	HTML   string
}

// BatchResult is the outcome of classifying one BatchItem.
type BatchResult struct {
	Source     string
	Paragraphs []*justext.Paragraph
	Err        error
}

// BatchClassifier runs justext.Classify over many documents concurrently,
// one core call per goroutine, coordinated with errgroup per §5 of the
// classification core's concurrency model: the core itself is always
// called synchronously from a single goroutine per document.
type BatchClassifier struct {
	Stoplist    map[string]struct{}
	Config      justext.Config
	Concurrency int

	// Dedup, if set, is used to drop Good paragraphs whose text has
	// already been seen in this batch, so that repeated boilerplate-
	// adjacent strings (the same nav blurb embedded in every page) don't
	// pollute extracted text for documents classified later in the batch.
	Dedup *bloom.Filter

	dedupMu sync.Mutex
}

// ClassifyAll classifies every item, preserving input order in the
// returned slice regardless of completion order. A per-item error is
// recorded on that item's BatchResult rather than aborting the batch.
func (b *BatchClassifier) ClassifyAll(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			paragraphs, err := justext.Classify(item.HTML, b.Stoplist, b.Config)
			if err != nil {
				results[i] = BatchResult{Source: item.Source, Err: err}
				return nil
			}
			if b.Dedup != nil {
				b.dedupGood(paragraphs)
			}
			results[i] = BatchResult{Source: item.Source, Paragraphs: paragraphs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// dedupGood demotes to Bad any Good paragraph whose text the filter has
// already seen, then records every remaining Good paragraph's text.
// Filter membership is probabilistic, so this trades a small, bounded
// false-positive rate (dropping a genuinely-unique paragraph that
// happens to collide) for not having to retain every paragraph text
// seen so far in the batch.
func (b *BatchClassifier) dedupGood(paragraphs []*justext.Paragraph) {
	b.dedupMu.Lock()
	defer b.dedupMu.Unlock()

	for _, p := range paragraphs {
		if p.ClassType != justext.Good {
			continue
		}
		if b.Dedup.Test(p.Text) {
			p.ClassType = justext.Bad
			continue
		}
		b.Dedup.Add(p.Text)
	}
}
