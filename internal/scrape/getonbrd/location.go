package getonbrd

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobradar-engine/internal/scrape/util"
)

var parenRe = regexp.MustCompile(`^(.*?)\s*\((.*?)\)$`)

// locationCombined pulls the raw "place (qualifier)" string from the
// .location element, after dropping the hidden tooltip children that would
// otherwise leak into the text.
func locationCombined(doc *goquery.Document) *string {
	loc := doc.Find(".location").First()
	if loc.Length() == 0 {
		return nil
	}
	loc.Find(".hide, .location-tooltip-content").Remove()

	txt := util.FlatText(loc)
	if txt == "" {
		return nil
	}
	return &txt
}

// SplitLocation disambiguates a combined "place (qualifier)" string.
// Normally the outer part is the location and the parenthetical is the
// work mode: "Santiago (In-office)". When the outer part is Remote/Remoto
// the roles invert: the parenthetical names the eligible country, and the
// outer word is the mode: "Remote (Chile)" means location=Chile,
// modality=Remote. Without that inversion we'd store "Remote" as a city.
func SplitLocation(combined string) (location, workMode *string) {
	combined = strings.TrimSpace(combined)
	if combined == "" {
		return nil, nil
	}

	m := parenRe.FindStringSubmatch(combined)
	if m == nil {
		return strPtr(combined), nil
	}

	outer := strings.TrimSpace(m[1])
	inner := strings.TrimSpace(m[2])

	switch strings.ToLower(outer) {
	case "remote", "remoto":
		return strPtr(inner), strPtr(outer)
	default:
		return strPtr(outer), strPtr(inner)
	}
}
