package justext

import "unicode/utf8"

// direction distinguishes the two neighbor-scan directions used by the
// reviser's helper.
type direction int

const (
	backward direction = iota
	forward
)

// ReviseParagraphs refines the context-free labels in four ordered
// stages, using neighboring paragraphs' labels to resolve Short, NearGood
// and boilerplate-adjacent headings. It first resets ClassType to
// InitialClass on every paragraph, so revising twice gives the same labels.
func ReviseParagraphs(paragraphs []*Paragraph, config Config) {
	for _, p := range paragraphs {
		p.ClassType = p.InitialClass
	}
	stage1PromoteHeadings(paragraphs, config)
	stage2ResolveShort(paragraphs)
	stage3ResolveNearGood(paragraphs)
	stage4PromoteHeadings(paragraphs, config)
}

// neighbor scans from i in the given direction, skipping Short paragraphs
// always and NearGood paragraphs when ignoreNearGood is true. It returns
// Bad if the scan runs off the edge of the document.
func neighbor(paragraphs []*Paragraph, i int, dir direction, ignoreNearGood bool) ClassType {
	step := -1
	if dir == forward {
		step = 1
	}
	for j := i + step; j >= 0 && j < len(paragraphs); j += step {
		ct := paragraphs[j].ClassType
		if ct == Short {
			continue
		}
		if ct == NearGood && ignoreNearGood {
			continue
		}
		return ct
	}
	return Bad
}

func prevClass(paragraphs []*Paragraph, i int, ignoreNearGood bool) ClassType {
	return neighbor(paragraphs, i, backward, ignoreNearGood)
}

func nextClass(paragraphs []*Paragraph, i int, ignoreNearGood bool) ClassType {
	return neighbor(paragraphs, i, forward, ignoreNearGood)
}

// headingReachesGood scans forward from i+1, accumulating the character
// length of paragraphs strictly between i and the current candidate, and
// reports whether a Good paragraph lies within maxDistance characters.
func headingReachesGood(paragraphs []*Paragraph, i, maxDistance int) bool {
	distance := 0
	for j := i + 1; j < len(paragraphs) && distance <= maxDistance; j++ {
		if paragraphs[j].ClassType == Good {
			return true
		}
		distance += utf8.RuneCountInString(paragraphs[j].Text)
	}
	return false
}

// stage1PromoteHeadings promotes a Short heading to NearGood when a Good
// paragraph appears within max_heading_distance characters after it.
// Mutations apply immediately, so a promoted heading can itself serve as
// a later heading's Good neighbor only once Stage 3 resolves it further.
func stage1PromoteHeadings(paragraphs []*Paragraph, config Config) {
	if config.NoHeadings {
		return
	}
	for i, p := range paragraphs {
		if p.Heading && p.ClassType == Short && headingReachesGood(paragraphs, i, config.MaxHeadingDistance) {
			p.ClassType = NearGood
		}
	}
}

// stage2ResolveShort resolves every Short paragraph by its neighbors,
// batched against a frozen snapshot of the labels as they stood before
// this stage began — a freshly reclassified Short paragraph must not
// influence another Short paragraph in the same pass.
func stage2ResolveShort(paragraphs []*Paragraph) {
	newLabel := make(map[int]ClassType)
	for i, p := range paragraphs {
		if p.ClassType != Short {
			continue
		}
		prev := prevClass(paragraphs, i, true)
		next := nextClass(paragraphs, i, true)

		switch {
		case prev == Good && next == Good:
			newLabel[i] = Good
		case prev == Bad && next == Bad:
			newLabel[i] = Bad
		default:
			// Mixed: re-query whichever side came back Bad without
			// skipping NearGood, since it may really be NearGood.
			if prev == Bad {
				if prevClass(paragraphs, i, false) == NearGood {
					newLabel[i] = Good
				} else {
					newLabel[i] = Bad
				}
			} else {
				if nextClass(paragraphs, i, false) == NearGood {
					newLabel[i] = Good
				} else {
					newLabel[i] = Bad
				}
			}
		}
	}
	for i, label := range newLabel {
		paragraphs[i].ClassType = label
	}
}

// stage3ResolveNearGood resolves every NearGood paragraph in order,
// applying each change immediately so later paragraphs in the same pass
// see already-resolved neighbors.
func stage3ResolveNearGood(paragraphs []*Paragraph) {
	for i, p := range paragraphs {
		if p.ClassType != NearGood {
			continue
		}
		prev := prevClass(paragraphs, i, true)
		next := nextClass(paragraphs, i, true)
		if prev == Bad && next == Bad {
			p.ClassType = Bad
		} else {
			p.ClassType = Good
		}
	}
}

// stage4PromoteHeadings promotes a heading that is still Bad — but whose
// InitialClass was never Bad — to Good (not NearGood) when a Good
// paragraph appears within max_heading_distance characters after it.
func stage4PromoteHeadings(paragraphs []*Paragraph, config Config) {
	if config.NoHeadings {
		return
	}
	for i, p := range paragraphs {
		if p.Heading && p.ClassType == Bad && p.InitialClass != Bad &&
			headingReachesGood(paragraphs, i, config.MaxHeadingDistance) {
			p.ClassType = Good
		}
	}
}
