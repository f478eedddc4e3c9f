package recency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAcceptWindow(t *testing.T) {
	now := time.Date(2025, 7, 20, 15, 30, 0, 0, time.UTC)
	f := Filter{WindowDays: 30, Now: fixedNow(now)}

	tests := []struct {
		label string
		want  bool
	}{
		{"jul 02", true},
		{"Jul 20", true},  // today
		{"jun 20", true},  // exactly 30 days old, closed interval
		{"jun 19", false}, // 31 days old
		{"jan 05", false},
		{"", true},          // empty label is permissive
		{"someday", false},  // malformed is strict
		{"xyz 05", false},   // unknown month
		{"jul zz", false},   // unparseable day
		{"jun 31", false},   // impossible date
		{"jul 2 20", false}, // too many tokens
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, f.Accept(tc.label), "label %q", tc.label)
	}
}

func TestAcceptCaseInsensitive(t *testing.T) {
	now := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)
	f := Filter{WindowDays: 30, Now: fixedNow(now)}

	assert.True(t, f.Accept("JUL 02"))
	assert.True(t, f.Accept("Jul 02"))
}

func TestYearRollback(t *testing.T) {
	// evaluating "dec 15" in January: month is ahead of today, so it
	// resolves to the previous year and is 31 days old
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	f := Filter{WindowDays: 30, Now: fixedNow(now)}
	assert.False(t, f.Accept("dec 15"))

	f = Filter{WindowDays: 45, Now: fixedNow(now)}
	assert.True(t, f.Accept("dec 15"))

	// never resolves to a future date
	f = Filter{WindowDays: 400, Now: fixedNow(now)}
	assert.True(t, f.Accept("feb 01")) // prior year's feb, 348 days old
}
