package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"jobradar-engine/internal/domain"
)

// SectionBatch is one posting's raw sections, ready for the second-pass
// classifier.
type SectionBatch struct {
	JobID    string
	Sections []domain.Section
}

// SectionBatches returns (job_id, sections) for every posting that has raw
// sections stored. Rows whose JSON won't parse are logged and skipped.
func SectionBatches(ctx context.Context, db *sql.DB) ([]SectionBatch, error) {
	rows, err := db.QueryContext(ctx, `
SELECT job_id, sections_raw
FROM job_offers
WHERE sections_raw IS NOT NULL;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SectionBatch
	for rows.Next() {
		var b SectionBatch
		var raw string
		if err := rows.Scan(&b.JobID, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &b.Sections); err != nil {
			log.Printf("[store] bad sections_raw job_id=%s: %v", b.JobID, err)
			continue
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateClassified writes the classified section columns for one job id.
// Returns false when no row matched.
func UpdateClassified(ctx context.Context, db *sql.DB, jobID string, cs domain.ClassifiedSections) (bool, error) {
	get := func(k string) *string {
		if v, ok := cs[k]; ok {
			return &v
		}
		return nil
	}

	res, err := db.ExecContext(ctx, `
UPDATE job_offers
SET responsibilities = ?,
    requirements = ?,
    nice_to_have = ?,
    candidate_profile = ?,
    benefits = ?,
    work_conditions = ?,
    how_to_apply = ?,
    selection_process = ?,
    others = ?
WHERE job_id = ?;`,
		get("responsibilities"),
		get("requirements"),
		get("nice_to_have"),
		get("candidate_profile"),
		get("benefits"),
		get("work_conditions"),
		get("how_to_apply"),
		get("selection_process"),
		get("others"),
		jobID,
	)
	if err != nil {
		return false, fmt.Errorf("update sections job_id=%s: %w", jobID, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
