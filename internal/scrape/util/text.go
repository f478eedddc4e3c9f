package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const nbsp = "\u00a0"

func CleanText(s string) string {
	s = strings.ReplaceAll(s, nbsp, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// FlatText returns the selection's text with a space between text nodes,
// collapsed. goquery's Text() glues adjacent nodes together, which turns
// "Santiago</a> (In-office)" into "Santiago(In-office)" when the markup
// carries no whitespace of its own.
func FlatText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		walkText(n, func(t string) {
			b.WriteString(t)
			b.WriteByte(' ')
		})
	}
	return CleanText(b.String())
}

// LineText returns the selection's text with one line per text node,
// trimmed, empties dropped. Keeps paragraph boundaries readable when a
// rich-text block is flattened to plain text.
func LineText(sel *goquery.Selection) string {
	var lines []string
	for _, n := range sel.Nodes {
		walkText(n, func(t string) {
			t = strings.TrimSpace(strings.ReplaceAll(t, nbsp, " "))
			if t != "" {
				lines = append(lines, t)
			}
		})
	}
	return strings.Join(lines, "\n")
}

func walkText(n *html.Node, emit func(string)) {
	if n.Type == html.TextNode {
		emit(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, emit)
	}
}
