package getonbrd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobradar-engine/internal/fetch"
	"jobradar-engine/internal/scrape/recency"
)

const listingHTML = `<html><body>
<a class="gb-results-list__item" href="/jobs/programming/backend-dev-acme">
  <div class="opacity-half size0">jul 02</div>
</a>
<a class="gb-results-list__item" href="/jobs/programming/old-posting">
  <div class="opacity-half size0">jan 05</div>
</a>
<a class="gb-results-list__item" href="/jobs/programming/pinned-posting"></a>
<a class="gb-results-list__item" href=""></a>
<a href="/not-a-job-card">ignored</a>
</body></html>`

func TestListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/programming", r.URL.Path)
		w.Write([]byte(listingHTML))
	}))
	defer srv.Close()

	s := New(Config{
		BaseURL:    srv.URL,
		PortalName: "getonbrd.com",
		MaxAgeDays: 30,
	}, fetch.New(5*time.Second, nil))
	now := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	s.recent = recency.Filter{WindowDays: 30, Now: func() time.Time { return now }}

	refs, err := s.Listing(context.Background(), "programming")
	require.NoError(t, err)

	// "jul 02" is inside the window, "jan 05" is not; the card without a
	// date label passes (permissive default); the empty href is dropped
	require.Len(t, refs, 2)
	assert.Equal(t, "/jobs/programming/backend-dev-acme", refs[0].URL)
	assert.Equal(t, "jul 02", refs[0].PostedLabel)
	assert.Equal(t, "/jobs/programming/pinned-posting", refs[1].URL)
	assert.Equal(t, "", refs[1].PostedLabel)
	for _, r := range refs {
		assert.Equal(t, "getonbrd.com", r.Portal)
		assert.Equal(t, "programming", r.Category)
	}
}

func TestListingFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, PortalName: "getonbrd.com", MaxAgeDays: 30},
		fetch.New(5*time.Second, nil))

	refs, err := s.Listing(context.Background(), "programming")
	assert.Error(t, err)
	assert.Empty(t, refs)
}

func TestDetailResolvesRelativeURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(detailHTML))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, PortalName: "getonbrd.com", MaxAgeDays: 30},
		fetch.New(5*time.Second, nil))

	p, err := s.Detail(context.Background(), "/jobs/programming/backend-dev-acme")
	require.NoError(t, err)
	assert.Equal(t, "/jobs/programming/backend-dev-acme", gotPath)
	assert.Equal(t, srv.URL+"/jobs/programming/backend-dev-acme", p.SourceURL)
	assert.Equal(t, "54321", p.JobID)
}
