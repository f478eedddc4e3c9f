package classify

import (
	"jobradar-engine/internal/domain"
)

// MergeSections classifies every section by title and concatenates content
// per category in the original document order, blank-line separated.
// Sections with no match land in "others" prefixed by their bracketed
// title, so no content is ever silently dropped: every input section
// appears in exactly one output category.
func MergeSections(sections []domain.Section, minScore int) domain.ClassifiedSections {
	out := domain.ClassifiedSections{}

	appendTo := func(category, chunk string) {
		if existing, ok := out[category]; ok {
			out[category] = existing + "\n\n" + chunk
		} else {
			out[category] = chunk
		}
	}

	for _, s := range sections {
		category, ok := Classify(s.Title, minScore)
		if !ok {
			appendTo("others", "["+s.Title+"]\n"+s.Content)
			continue
		}
		appendTo(category, s.Content)
	}
	return out
}
