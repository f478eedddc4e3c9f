package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar-engine/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, Migrate(db.Pool))
}

func TestInsertReferencesDedupes(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	refs := []domain.JobReference{
		{URL: "/jobs/programming/a", PostedLabel: "jul 02", Portal: "getonbrd.com", Category: "programming", DiscoveredAt: time.Now()},
		{URL: "/jobs/programming/b", PostedLabel: "jul 03", Portal: "getonbrd.com", Category: "programming", DiscoveredAt: time.Now()},
	}

	added, err := InsertReferences(ctx, db.Pool, refs)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// same batch again: nothing new
	added, err = InsertReferences(ctx, db.Pool, refs)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestUnprocessedAndMark(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	refs := []domain.JobReference{
		{URL: "/jobs/programming/a", Portal: "getonbrd.com", Category: "programming", DiscoveredAt: time.Now()},
		{URL: "/jobs/programming/b", Portal: "getonbrd.com", Category: "programming", DiscoveredAt: time.Now()},
	}
	_, err := InsertReferences(ctx, db.Pool, refs)
	require.NoError(t, err)

	pending, err := UnprocessedReferences(ctx, db.Pool, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "/jobs/programming/a", pending[0].URL) // insertion order

	require.NoError(t, MarkProcessed(ctx, db.Pool, "/jobs/programming/a"))

	pending, err = UnprocessedReferences(ctx, db.Pool, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "/jobs/programming/b", pending[0].URL)
}

func TestInsertPostingIgnore(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	title := "Backend Developer"
	p := &domain.JobPosting{
		JobID:     "54321",
		SourceURL: "https://www.getonbrd.com/jobs/programming/backend",
		Portal:    "getonbrd.com",
		ScrapedAt: time.Now().UTC(),
		Title:     &title,
		Sections: []domain.Section{
			{Title: "Beneficios", Content: "Seguro."},
		},
		Technologies: []string{"Go"},
	}

	added, err := InsertPostingIgnore(ctx, db.Pool, p)
	require.NoError(t, err)
	assert.True(t, added)

	// second insert for the same source_url is ignored
	added, err = InsertPostingIgnore(ctx, db.Pool, p)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestSectionBatchesAndUpdateClassified(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	p := &domain.JobPosting{
		JobID:     "54321",
		SourceURL: "https://www.getonbrd.com/jobs/programming/backend",
		Portal:    "getonbrd.com",
		ScrapedAt: time.Now().UTC(),
		Sections: []domain.Section{
			{Title: "Beneficios", Content: "Seguro."},
			{Title: "Requisitos", Content: "Go."},
		},
	}
	_, err := InsertPostingIgnore(ctx, db.Pool, p)
	require.NoError(t, err)

	// a posting without sections should not show up
	bare := &domain.JobPosting{
		JobID:     "99999",
		SourceURL: "https://www.getonbrd.com/jobs/programming/bare",
		Portal:    "getonbrd.com",
		ScrapedAt: time.Now().UTC(),
	}
	_, err = InsertPostingIgnore(ctx, db.Pool, bare)
	require.NoError(t, err)

	batches, err := SectionBatches(ctx, db.Pool)
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, "54321", batches[0].JobID)
	require.Len(t, batches[0].Sections, 2)
	assert.Equal(t, "Beneficios", batches[0].Sections[0].Title)

	ok, err := UpdateClassified(ctx, db.Pool, "54321", domain.ClassifiedSections{
		"benefits":     "Seguro.",
		"requirements": "Go.",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	var benefits, requirements string
	err = db.Pool.QueryRow(`SELECT benefits, requirements FROM job_offers WHERE job_id = '54321';`).
		Scan(&benefits, &requirements)
	require.NoError(t, err)
	assert.Equal(t, "Seguro.", benefits)
	assert.Equal(t, "Go.", requirements)

	ok, err = UpdateClassified(ctx, db.Pool, "no-such-id", domain.ClassifiedSections{})
	require.NoError(t, err)
	assert.False(t, ok)
}
