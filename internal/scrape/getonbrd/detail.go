package getonbrd

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobradar-engine/internal/domain"
	"jobradar-engine/internal/scrape/util"
)

var (
	jobIDRe        = regexp.MustCompile(`GETONBRD Job ID: (\d+)`)
	categoryRe     = regexp.MustCompile(`/(?:jobs|empleos|empregos|emplois)/([^/]+)/`)
	applicationsRe = regexp.MustCompile(`(?i)(\d+)\s+(applications?|postulaciones?)`)
	numberRe       = regexp.MustCompile(`\d+`)

	titleCaser = cases.Title(language.Und)
)

// Detail fetches one posting page and assembles the normalized record.
// The fetch is a single attempt; a total failure returns (nil, err) and
// the posting is the caller's error count. Individual missing fields never
// fail the record.
func (s *Scraper) Detail(ctx context.Context, jobURL string) (*domain.JobPosting, error) {
	if !strings.HasPrefix(jobURL, "http") {
		jobURL = strings.TrimRight(s.cfg.BaseURL, "/") + jobURL
	}

	doc, err := s.fc.Document(ctx, jobURL)
	if err != nil {
		return nil, fmt.Errorf("detail %s: %w", jobURL, err)
	}
	return s.Extract(doc, jobURL), nil
}

// Extract assembles a JobPosting from an already-parsed detail document.
func (s *Scraper) Extract(doc *goquery.Document, jobURL string) *domain.JobPosting {
	p := &domain.JobPosting{
		JobID:     "unknown", // sentinel when the id banner is missing
		SourceURL: jobURL,
		Portal:    s.cfg.PortalName,
		ScrapedAt: s.now().UTC(),
	}

	if m := jobIDRe.FindStringSubmatch(doc.Text()); m != nil {
		p.JobID = m[1]
	}

	p.Title = textPtr(doc.Find("span[itemprop='title']").First())
	p.CompanyName = textPtr(doc.Find("strong[itemprop='name']").First())
	p.CompanyURL = textPtr(doc.Find("span[itemprop='url']").First())
	p.PostedDate = postedDate(doc)
	p.CompanyDescription = companyDescription(doc)

	p.LocationCombined = locationCombined(doc)
	if p.LocationCombined != nil {
		p.Location, p.WorkMode = SplitLocation(*p.LocationCombined)
	}

	p.Seniority = textPtr(doc.Find("span[itemprop='qualifications']").First())
	p.EmploymentType = textPtr(doc.Find("span[itemprop='employmentType']").First())
	p.Category = categoryFromURL(jobURL)

	parseSalary(doc, p)
	p.Sections = segmentSections(doc)
	p.Technologies = technologies(doc)
	p.Perks = perks(doc)

	meta := doc.Find(".size0.mt1").First()
	p.Applications = applications(meta)
	p.ReplyTime = replyTime(meta)
	p.LastChecked = lastChecked(meta)

	p.RemotePolicy = remotePolicy(doc)
	p.ApplyURL = attrPtr(doc.Find("a#apply_bottom").First(), "href")

	return p
}

func textPtr(sel *goquery.Selection) *string {
	if sel.Length() == 0 {
		return nil
	}
	t := util.CleanText(sel.Text())
	if t == "" {
		return nil
	}
	return &t
}

func postedDate(doc *goquery.Document) *string {
	v, ok := doc.Find("time[itemprop='datePosted']").First().Attr("datetime")
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			d := t.Format("2006-01-02")
			return &d
		}
	}
	return nil
}

// companyDescription is the first paragraph of the first rich-text block
// inside the description; the portal renders the company blurb there,
// ahead of the titled sections.
func companyDescription(doc *goquery.Document) *string {
	rich := doc.Find("div[itemprop='description']").First().Find("div.gb-rich-txt").First()
	if rich.Length() == 0 {
		return nil
	}
	return textPtr(rich.Find("p, div").First())
}

func categoryFromURL(jobURL string) *string {
	m := categoryRe.FindStringSubmatch(jobURL)
	if m == nil {
		return nil
	}
	// programming -> Programming, design-ux -> Design Ux
	c := titleCaser.String(strings.ReplaceAll(m[1], "-", " "))
	return &c
}

func technologies(doc *goquery.Document) []string {
	var out []string
	doc.Find("div.gb-tags[itemprop='skills']").First().
		Find("a.gb-tags__item").Each(func(_ int, a *goquery.Selection) {
		if t := util.CleanText(a.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

func perks(doc *goquery.Document) []string {
	var out []string
	doc.Find(".gb-fluid-boxes__item strong").Each(func(_ int, tag *goquery.Selection) {
		if t := util.CleanText(tag.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

func applications(meta *goquery.Selection) *int {
	if meta.Length() == 0 {
		return nil
	}
	m := applicationsRe.FindStringSubmatch(meta.Text())
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// replyTime reads the embedded numbers positionally: the caption carries
// "<applications> ... replies between <a> and <b> days", so the second and
// third numbers compose the range. The first is the applications count,
// extracted separately.
func replyTime(meta *goquery.Selection) *string {
	if meta.Length() == 0 {
		return nil
	}
	nums := numberRe.FindAllString(meta.Text(), -1)
	if len(nums) < 3 {
		return nil
	}
	r := nums[1] + "-" + nums[2] + " days"
	return &r
}

func lastChecked(meta *goquery.Selection) *string {
	if meta.Length() == 0 {
		return nil
	}
	var last string
	for _, line := range strings.Split(meta.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			last = line
		}
	}
	low := strings.ToLower(last)
	if strings.Contains(low, "hoy") || strings.Contains(low, "today") {
		return strPtr("today")
	}
	return nil
}

// remotePolicy scans the h2 headings for the bilingual policy title and
// reads the descriptive paragraph that follows it (the first sibling p is
// the mode summary, the one after it the actual policy text).
func remotePolicy(doc *goquery.Document) *string {
	var out *string
	doc.Find("h2").EachWithBreak(func(_ int, h2 *goquery.Selection) bool {
		t := util.CleanText(h2.Text())
		if !strings.Contains(t, "Remote work policy") && !strings.Contains(t, "Política de trabajo remoto") {
			return true
		}
		next := h2.Next()
		if goquery.NodeName(next) != "p" {
			return true
		}
		desc := next.NextAllFiltered("p").First()
		if desc.Length() == 0 {
			return true
		}
		out = textPtr(desc)
		return false
	})
	return out
}
