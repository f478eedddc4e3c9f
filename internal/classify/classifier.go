// Package classify maps free-text section headings onto the fixed taxonomy
// using substring-tolerant fuzzy matching against a curated bilingual
// keyword table.
package classify

import (
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const DefaultMinScore = 70

// longer inputs are assumed to be misplaced body text; only a title-length
// prefix is worth comparing
const (
	maxNormalizedLen = 100
	prefixTokens     = 50
)

// Classify maps text (a section title, optionally with a content prefix)
// to a canonical category. Returns ("", false) when no phrase scores at
// least minScore; the caller routes those to "others".
//
// The scan order is fixed (Categories) and the best score only updates on
// strictly greater values, so a tie always goes to the first category
// encountered at the maximum.
func Classify(text string, minScore int) (string, bool) {
	if text == "" {
		return "", false
	}

	normText := Normalize(text)
	if utf8.RuneCountInString(normText) > maxNormalizedLen {
		fields := strings.Fields(normText)
		if len(fields) > prefixTokens {
			fields = fields[:prefixTokens]
		}
		normText = strings.Join(fields, " ")
	}

	best := ""
	bestScore := 0
	for _, category := range Categories {
		for _, phrase := range patterns[category] {
			score := fuzzy.PartialRatio(Normalize(phrase), normText)
			if score > bestScore {
				bestScore = score
				best = category
			}
		}
	}

	if bestScore >= minScore {
		return best, true
	}
	return "", false
}
