// Package bloom provides probabilistic text deduplication using Bloom
// filters, used to spot repeated boilerplate paragraphs across a batch of
// classified documents.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for string deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds s to the filter.
func (f *Filter) Add(s string) {
	f.f.AddString(s)
}

// Test returns true if s might already be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(s string) bool {
	return f.f.TestString(s)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
