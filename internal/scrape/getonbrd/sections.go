package getonbrd

import (
	"github.com/PuerkitoBio/goquery"

	"jobradar-engine/internal/domain"
	"jobradar-engine/internal/scrape/util"
)

// segmentSections slices the posting body into (title, content) pairs.
// Every div.mb4 that carries both an h3 heading and a gb-rich-txt body is
// one section; document order is preserved and nothing is merged here.
// Merging is the classifier's job.
func segmentSections(doc *goquery.Document) []domain.Section {
	var out []domain.Section
	doc.Find("div.mb4").Each(func(_ int, div *goquery.Selection) {
		h3 := div.Find("h3").First()
		body := div.Find("div.gb-rich-txt").First()
		if h3.Length() == 0 || body.Length() == 0 {
			return
		}
		out = append(out, domain.Section{
			Title:   util.CleanText(h3.Text()),
			Content: util.LineText(body),
		})
	})
	return out
}
