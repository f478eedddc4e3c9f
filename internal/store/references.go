package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobradar-engine/internal/domain"
)

// InsertReferences inserts a harvested batch, ignoring URLs already seen.
// Returns how many rows were actually new.
func InsertReferences(ctx context.Context, db *sql.DB, refs []domain.JobReference) (added int, err error) {
	for _, r := range refs {
		res, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO job_urls (url, posted_date, portal, category, scraped_at, processed)
VALUES (?, ?, ?, ?, ?, 0);`,
			r.URL, r.PostedLabel, r.Portal, r.Category, r.DiscoveredAt.Format(time.RFC3339),
		)
		if err != nil {
			return added, fmt.Errorf("insert reference %s: %w", r.URL, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	return added, nil
}

// UnprocessedReferences returns references not yet run through the detail
// extractor, oldest first. limit <= 0 means no limit.
func UnprocessedReferences(ctx context.Context, db *sql.DB, limit int) ([]domain.JobReference, error) {
	query := `
SELECT url, posted_date, portal, category, scraped_at
FROM job_urls
WHERE processed = 0
ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobReference
	for rows.Next() {
		var r domain.JobReference
		var scrapedAt string
		if err := rows.Scan(&r.URL, &r.PostedLabel, &r.Portal, &r.Category, &scrapedAt); err != nil {
			return nil, err
		}
		r.DiscoveredAt, _ = time.Parse(time.RFC3339, scrapedAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func MarkProcessed(ctx context.Context, db *sql.DB, url string) error {
	_, err := db.ExecContext(ctx, `UPDATE job_urls SET processed = 1 WHERE url = ?;`, url)
	if err != nil {
		return fmt.Errorf("mark processed %s: %w", url, err)
	}
	return nil
}
