// Package scrape drives the pipeline: harvest listing references, extract
// posting details, classify stored sections. Everything is best-effort:
// failures are absorbed per item and surfaced as end-of-run counters.
package scrape

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"jobradar-engine/internal/classify"
	"jobradar-engine/internal/config"
	"jobradar-engine/internal/fetch"
	"jobradar-engine/internal/scrape/getonbrd"
	"jobradar-engine/internal/store"
)

type Counters struct {
	Harvested  int
	Processed  int
	Added      int
	Errors     int
	Classified int
}

type Pipeline struct {
	cfg     config.Config
	db      *sql.DB
	scraper *getonbrd.Scraper
}

func NewPipeline(cfg config.Config, db *sql.DB) *Pipeline {
	limiter := fetch.NewHostLimiter(cfg.Scraping.RequestsPerSecond, cfg.Scraping.Burst)
	fc := fetch.New(time.Duration(cfg.Scraping.TimeoutSeconds)*time.Second, limiter)

	dumpDir := ""
	if cfg.App.RawDumps {
		dumpDir = filepath.Join(cfg.App.DataDir, "raw")
	}

	scraper := getonbrd.New(getonbrd.Config{
		BaseURL:    cfg.Portal.BaseURL,
		PortalName: cfg.Portal.Name,
		MaxAgeDays: cfg.Scraping.MaxJobAgeDays,
		DumpDir:    dumpDir,
	}, fc)

	return &Pipeline{cfg: cfg, db: db, scraper: scraper}
}

// RunOnce runs a full pass: harvest, process, classify.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	var c Counters

	if err := p.harvest(ctx, &c); err != nil {
		return err
	}
	if err := p.process(ctx, &c); err != nil {
		return err
	}
	if err := p.classifyStored(ctx, &c); err != nil {
		return err
	}

	log.Printf("[pipeline] done harvested=%d processed=%d added=%d classified=%d errors=%d",
		c.Harvested, c.Processed, c.Added, c.Classified, c.Errors)
	return nil
}

// harvest pulls each category's listing page and stores new references.
// A failed category contributes zero references and one error count.
func (p *Pipeline) harvest(ctx context.Context, c *Counters) error {
	for _, category := range p.cfg.Portal.Categories {
		if err := ctx.Err(); err != nil {
			return err
		}

		refs, err := p.scraper.Listing(ctx, category)
		if err != nil {
			log.Printf("[harvest] category=%s error: %v", category, err)
			c.Errors++
			continue
		}

		added, err := store.InsertReferences(ctx, p.db, refs)
		if err != nil {
			log.Printf("[harvest] category=%s insert error: %v", category, err)
			c.Errors++
			continue
		}
		c.Harvested += added
		log.Printf("[harvest] category=%s new=%d", category, added)
	}
	return nil
}

// process runs the detail extractor over every unprocessed reference.
// One attempt per posting: failures are counted and the reference is still
// marked processed so it is never retried.
func (p *Pipeline) process(ctx context.Context, c *Counters) error {
	refs, err := store.UnprocessedReferences(ctx, p.db, 0)
	if err != nil {
		return err
	}
	log.Printf("[process] pending=%d", len(refs))

	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if i > 0 {
			if err := p.pause(ctx, i); err != nil {
				return err
			}
		}

		posting, err := p.scraper.Detail(ctx, ref.URL)
		if err != nil {
			log.Printf("[process] error url=%q: %v", ref.URL, err)
			c.Errors++
		} else {
			added, err := store.InsertPostingIgnore(ctx, p.db, posting)
			if err != nil {
				log.Printf("[process] insert error url=%q: %v", ref.URL, err)
				c.Errors++
			} else if added {
				c.Added++
			}
		}

		if err := store.MarkProcessed(ctx, p.db, ref.URL); err != nil {
			log.Printf("[process] mark error url=%q: %v", ref.URL, err)
		}
		c.Processed++
	}
	return nil
}

// classifyStored is the second pass: read raw sections back from storage,
// classify, and write the per-category columns.
func (p *Pipeline) classifyStored(ctx context.Context, c *Counters) error {
	batches, err := store.SectionBatches(ctx, p.db)
	if err != nil {
		return err
	}

	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(b.Sections) == 0 {
			continue
		}

		cs := classify.MergeSections(b.Sections, p.cfg.Classifier.MinScore)
		ok, err := store.UpdateClassified(ctx, p.db, b.JobID, cs)
		if err != nil {
			log.Printf("[classify] job_id=%s error: %v", b.JobID, err)
			c.Errors++
			continue
		}
		if ok {
			c.Classified++
		}
	}
	return nil
}

// pause sleeps a randomized short delay between detail fetches, plus a
// longer breather after every batch.
func (p *Pipeline) pause(ctx context.Context, i int) error {
	minMs := p.cfg.Scraping.DelayMinMs
	maxMs := p.cfg.Scraping.DelayMaxMs
	d := time.Duration(minMs+rand.Intn(maxMs-minMs+1)) * time.Millisecond

	if p.cfg.Scraping.BatchSize > 0 && i%p.cfg.Scraping.BatchSize == 0 {
		d += time.Duration(p.cfg.Scraping.BatchPauseSeconds) * time.Second
		log.Printf("[process] batch pause %s", d)
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
