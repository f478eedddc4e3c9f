package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	Pool *sql.DB
}

func Open(path string) (*DB, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite wants a single writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS job_urls (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  url TEXT NOT NULL UNIQUE,
  posted_date TEXT NOT NULL DEFAULT '',
  portal TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  scraped_at TEXT NOT NULL,
  processed INTEGER NOT NULL DEFAULT 0
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS job_offers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  job_id TEXT NOT NULL DEFAULT 'unknown',
  source_url TEXT NOT NULL UNIQUE,
  portal_name TEXT,
  scraped_at TEXT,
  posted_date TEXT,
  job_title_raw TEXT,
  job_category_raw TEXT,
  company_name_raw TEXT,
  company_url_raw TEXT,
  company_description_raw TEXT,
  location_work_mode_raw TEXT,
  location_raw TEXT,
  work_mode_raw TEXT,
  seniority_raw TEXT,
  employment_type_raw TEXT,
  salary_disclosed INTEGER NOT NULL DEFAULT 0,
  salary_raw TEXT,
  salary_min_raw TEXT,
  salary_max_raw TEXT,
  salary_currency_raw TEXT,
  salary_unit_raw TEXT,
  salary_type_raw TEXT,
  tech_stack_raw TEXT,
  sections_raw TEXT,
  perks_raw TEXT,
  last_checked TEXT,
  applications_raw INTEGER,
  reply_time_raw TEXT,
  remote_policy_raw TEXT,
  apply_url TEXT,
  responsibilities TEXT,
  requirements TEXT,
  nice_to_have TEXT,
  candidate_profile TEXT,
  benefits TEXT,
  work_conditions TEXT,
  how_to_apply TEXT,
  selection_process TEXT,
  others TEXT
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_job_urls_processed
ON job_urls(processed);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_job_offers_job_id
ON job_offers(job_id);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
