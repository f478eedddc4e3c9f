package domain

import "time"

// JobReference is one listing-page hit: a detail URL plus the short date
// label shown on the card. References are deduped by URL in storage.
type JobReference struct {
	URL          string
	PostedLabel  string
	Portal       string
	Category     string
	DiscoveredAt time.Time
	Processed    bool
}

// Section is a (heading, body) slice of a posting description, in document
// order. Produced by the segmenter, consumed by the classifier.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ClassifiedSections maps a canonical category name to the concatenated
// content of every section that landed in it.
type ClassifiedSections map[string]string

// JobPosting is the normalized record extracted from one detail page.
// Every pointer field is independently optional: a missing anchor on the
// page leaves that field nil and nothing else.
type JobPosting struct {
	JobID     string // numeric portal id, or "unknown"
	SourceURL string
	Portal    string
	ScrapedAt time.Time

	PostedDate         *string // YYYY-MM-DD
	Title              *string
	Category           *string
	CompanyName        *string
	CompanyURL         *string
	CompanyDescription *string

	LocationCombined *string // raw "place (qualifier)" string
	Location         *string
	WorkMode         *string

	Seniority      *string
	EmploymentType *string

	SalaryDisclosed bool
	SalaryRaw       *string
	SalaryMin       *string
	SalaryMax       *string
	SalaryCurrency  *string
	SalaryUnit      *string
	SalaryType      *string // gross/net caption, lowercased

	Technologies []string
	Sections     []Section
	Perks        []string

	LastChecked  *string // "today" when the caption says so
	Applications *int
	ReplyTime    *string // "n1-n2 days"
	RemotePolicy *string
	ApplyURL     *string
}
