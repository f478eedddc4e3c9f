package getonbrd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobradar-engine/internal/domain"
	"jobradar-engine/internal/scrape/util"
)

// Listing fetches one category listing page and returns the job references
// that pass the recency filter, in page order. No pagination: the first
// page is all we harvest.
func (s *Scraper) Listing(ctx context.Context, category string) ([]domain.JobReference, error) {
	u := fmt.Sprintf("%s/jobs/%s", strings.TrimRight(s.cfg.BaseURL, "/"), category)

	doc, err := s.fc.Document(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", category, err)
	}
	if s.cfg.DumpDir != "" {
		s.dumpListing(doc, category)
	}

	items := doc.Find("a.gb-results-list__item")
	total := items.Length()

	discovered := s.now().UTC()
	var refs []domain.JobReference
	items.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		label := util.CleanText(a.Find(".opacity-half.size0").First().Text())
		if !s.recent.Accept(label) {
			return
		}

		refs = append(refs, domain.JobReference{
			URL:          href,
			PostedLabel:  label,
			Portal:       s.cfg.PortalName,
			Category:     category,
			DiscoveredAt: discovered,
		})
	})

	log.Printf("[getonbrd] category=%s found=%d recent=%d", category, total, len(refs))

	if s.cfg.DumpDir != "" {
		s.dumpRefs(refs, category)
	}
	return refs, nil
}

func (s *Scraper) dumpListing(doc *goquery.Document, category string) {
	h, err := doc.Html()
	if err != nil {
		return
	}
	if err := os.MkdirAll(s.cfg.DumpDir, 0o755); err != nil {
		return
	}
	path := filepath.Join(s.cfg.DumpDir, "listing_"+category+".html")
	if err := os.WriteFile(path, []byte(h), 0o644); err != nil {
		log.Printf("[getonbrd] dump listing: %v", err)
	}
}

func (s *Scraper) dumpRefs(refs []domain.JobReference, category string) {
	var b strings.Builder
	for _, r := range refs {
		b.WriteString(r.URL + " | " + r.PostedLabel + "\n")
	}
	if err := os.MkdirAll(s.cfg.DumpDir, 0o755); err != nil {
		return
	}
	path := filepath.Join(s.cfg.DumpDir, "job_urls_"+category+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		log.Printf("[getonbrd] dump refs: %v", err)
	}
}
