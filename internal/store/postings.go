package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobradar-engine/internal/domain"
)

// InsertPostingIgnore stores one extracted record, keyed by source_url.
// Returns false when the URL was already stored.
func InsertPostingIgnore(ctx context.Context, db *sql.DB, p *domain.JobPosting) (bool, error) {
	techJSON := jsonOrNil(p.Technologies)
	perksJSON := jsonOrNil(p.Perks)

	var sectionsJSON *string
	if len(p.Sections) > 0 {
		if b, err := json.Marshal(p.Sections); err == nil {
			s := string(b)
			sectionsJSON = &s
		}
	}

	res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO job_offers (
  job_id, source_url, portal_name, scraped_at, posted_date,
  job_title_raw, job_category_raw, company_name_raw, company_url_raw,
  company_description_raw, location_work_mode_raw, location_raw,
  work_mode_raw, seniority_raw, employment_type_raw,
  salary_disclosed, salary_raw, salary_min_raw, salary_max_raw,
  salary_currency_raw, salary_unit_raw, salary_type_raw,
  tech_stack_raw, sections_raw, perks_raw,
  last_checked, applications_raw, reply_time_raw, remote_policy_raw, apply_url
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		p.JobID, p.SourceURL, p.Portal, p.ScrapedAt.Format(time.RFC3339), p.PostedDate,
		p.Title, p.Category, p.CompanyName, p.CompanyURL,
		p.CompanyDescription, p.LocationCombined, p.Location,
		p.WorkMode, p.Seniority, p.EmploymentType,
		boolToInt(p.SalaryDisclosed), p.SalaryRaw, p.SalaryMin, p.SalaryMax,
		p.SalaryCurrency, p.SalaryUnit, p.SalaryType,
		techJSON, sectionsJSON, perksJSON,
		p.LastChecked, p.Applications, p.ReplyTime, p.RemotePolicy, p.ApplyURL,
	)
	if err != nil {
		return false, fmt.Errorf("insert posting %s: %w", p.SourceURL, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func jsonOrNil(vals []string) *string {
	if len(vals) == 0 {
		return nil
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
