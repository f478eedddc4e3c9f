// Package getonbrd scrapes the GetOnBoard job portal: one listing page per
// category, then one detail page per posting. A missing anchor nils that
// field and extraction moves on; no field depends on another being present.
package getonbrd

import (
	"time"

	"jobradar-engine/internal/fetch"
	"jobradar-engine/internal/scrape/recency"
)

type Config struct {
	BaseURL    string // https://www.getonbrd.com
	PortalName string // getonbrd.com
	MaxAgeDays int
	DumpDir    string // save raw listing HTML here when non-empty
}

type Scraper struct {
	cfg    Config
	fc     *fetch.Client
	recent recency.Filter
	now    func() time.Time
}

func New(cfg Config, fc *fetch.Client) *Scraper {
	return &Scraper{
		cfg:    cfg,
		fc:     fc,
		recent: recency.New(cfg.MaxAgeDays),
		now:    time.Now,
	}
}

func (s *Scraper) Name() string { return "getonbrd" }

func strPtr(v string) *string { return &v }
