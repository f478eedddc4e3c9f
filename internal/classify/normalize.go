package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// keep letters, digits, whitespace, hyphen, apostrophe; emojis and other
// punctuation become spaces
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}\s\-']`)

var unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips special characters, folds accented letters to their
// base, lowercases and trims. "Funciones del Cárgo" and
// "FUNCIONES DEL CARGO" normalize identically.
func Normalize(text string) string {
	text = nonWordRe.ReplaceAllString(text, " ")
	if folded, _, err := transform.String(unaccent, text); err == nil {
		text = folded
	}
	return strings.TrimSpace(strings.ToLower(text))
}
