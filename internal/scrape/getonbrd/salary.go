package getonbrd

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobradar-engine/internal/domain"
	"jobradar-engine/internal/scrape/util"
)

// parseSalary fills the salary fields from the itemprop=baseSalary block.
// No block means the salary simply isn't disclosed; the rest of the record
// is unaffected.
func parseSalary(doc *goquery.Document, p *domain.JobPosting) {
	scope := doc.Find("span[itemprop='baseSalary']").First()
	if scope.Length() == 0 {
		p.SalaryDisclosed = false
		return
	}
	p.SalaryDisclosed = true

	p.SalaryMin = attrPtr(scope.Find("span[itemprop='minValue']").First(), "content")
	p.SalaryMax = attrPtr(scope.Find("span[itemprop='maxValue']").First(), "content")
	p.SalaryCurrency = attrPtr(scope.Find("span[itemprop='currency']").First(), "content")
	p.SalaryUnit = attrPtr(scope.Find("span[itemprop='unitText']").First(), "content")

	raw := fmt.Sprintf("%s - %s %s/%s", deref(p.SalaryMin), deref(p.SalaryMax), deref(p.SalaryCurrency), deref(p.SalaryUnit))
	p.SalaryRaw = &raw

	// gross/liquid caption next to the figures
	if t := util.CleanText(scope.Find("span.hide-on-small-mobile").First().Text()); t != "" {
		low := strings.ToLower(t)
		p.SalaryType = &low
	}
}

func attrPtr(sel *goquery.Selection, name string) *string {
	v, ok := sel.Attr(name)
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
