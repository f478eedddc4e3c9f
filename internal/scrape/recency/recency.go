// Package recency decides whether a listing card's abbreviated date label
// ("jul 02") falls inside a rolling day-count window.
package recency

import (
	"strconv"
	"strings"
	"time"
)

var months = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

type Filter struct {
	WindowDays int
	Now        func() time.Time // nil means time.Now
}

func New(windowDays int) Filter {
	return Filter{WindowDays: windowDays}
}

// Accept reports whether the label's inferred date lies in the closed
// interval [today-WindowDays, today]. An empty label is accepted; a
// non-empty label that doesn't parse is rejected. That asymmetry matches
// the portal: cards without a date are fresh pinned posts, cards with a
// mangled one are not trusted.
func (f Filter) Accept(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return true
	}

	parts := strings.Fields(strings.ToLower(label))
	if len(parts) != 2 {
		return false
	}

	month := monthIndex(parts[0])
	if month == 0 {
		return false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	jobDate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if jobDate.Month() != month || jobDate.Day() != day {
		return false // "jun 31" normalizes away; treat as unparseable
	}

	// a month/day ahead of today belongs to the previous year
	if jobDate.After(today) {
		jobDate = jobDate.AddDate(-1, 0, 0)
	}

	oldest := today.AddDate(0, 0, -f.WindowDays)
	return !jobDate.Before(oldest) && !jobDate.After(today)
}

func monthIndex(abbrev string) time.Month {
	for i, m := range months {
		if m == abbrev {
			return time.Month(i + 1)
		}
	}
	return 0
}
