package jobsearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobCard(title, company, location, href, ago string) string {
	return fmt.Sprintf(`
		<li>
			<a class="base-card__full-link" href="%s">link</a>
			<h3 class="base-search-card__title"> %s </h3>
			<h4 class="base-search-card__subtitle"> %s </h4>
			<span class="job-search-card__location"> %s </span>
			<time class="job-search-card__listdate">%s</time>
		</li>`, href, title, company, location, ago)
}

// TestSearch_ParsesCards tests normalization of guest search HTML
func TestSearch_ParsesCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Backend Engineer", q.Get("keywords"))
		assert.Equal(t, "India", q.Get("location"))
		assert.Equal(t, "r2592000", q.Get("f_TPR"))
		assert.Equal(t, "F", q.Get("f_JT"))
		assert.Equal(t, "2", q.Get("f_WT"))
		assert.Equal(t, "4", q.Get("f_SAL"))
		assert.Equal(t, "2", q.Get("f_E"))
		assert.Equal(t, "0", q.Get("start"))

		_, _ = fmt.Fprintf(w, "<ul>%s%s</ul>",
			jobCard("Backend Engineer", "Acme", "Remote, India", "https://jobs.example/1", "2 days ago"),
			jobCard("Platform Engineer", "Globex", "Bengaluru", "https://jobs.example/2", "1 week ago"),
		)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs, err := c.Search(context.Background(), "Backend Engineer")
	require.NoError(t, err)

	require.Len(t, jobs, 2)
	assert.Equal(t, Job{
		Position: "Backend Engineer",
		Company:  "Acme",
		Location: "Remote, India",
		JobURL:   "https://jobs.example/1",
		AgoTime:  "2 days ago",
	}, jobs[0])
	assert.Equal(t, "Globex", jobs[1].Company)
}

// TestSearch_LimitsPerRole tests the per-role posting cap
func TestSearch_LimitsPerRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var body string
		for i := 0; i < 10; i++ {
			body += jobCard("Role", "Co", "Remote", fmt.Sprintf("https://jobs.example/%d", i), "today")
		}
		_, _ = fmt.Fprintf(w, "<ul>%s</ul>", body)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs, err := c.Search(context.Background(), "Role")
	require.NoError(t, err)
	assert.Len(t, jobs, jobsPerRole)
}

// TestSearch_SkipsCardsWithoutLink tests that cards missing a URL are ignored
func TestSearch_SkipsCardsWithoutLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<ul><li><h3 class="base-search-card__title">No link</h3></li>`+
			jobCard("Real", "Acme", "Remote", "https://jobs.example/1", "today")+`</ul>`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs, err := c.Search(context.Background(), "Role")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Real", jobs[0].Position)
}

// TestSearchQuery_Overrides tests caller-supplied location, level, and limit
func TestSearchQuery_Overrides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Data Engineer", q.Get("keywords"))
		assert.Equal(t, "Remote", q.Get("location"))
		assert.Equal(t, "3", q.Get("f_E"))

		var body string
		for i := 0; i < 10; i++ {
			body += jobCard("Data Engineer", "Co", "Remote", fmt.Sprintf("https://jobs.example/%d", i), "today")
		}
		_, _ = fmt.Fprintf(w, "<ul>%s</ul>", body)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs, err := c.SearchQuery(context.Background(), Query{
		Keyword:  "Data Engineer",
		Location: "Remote",
		Level:    "Associate",
		Limit:    8,
	})
	require.NoError(t, err)
	assert.Len(t, jobs, 8)
}

// TestSearchQuery_UnknownLevel tests the entry-level fallback
func TestSearchQuery_UnknownLevel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("f_E"))
		_, _ = fmt.Fprint(w, "<ul></ul>")
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs, err := c.SearchQuery(context.Background(), Query{Keyword: "Role", Level: "wizard"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

// TestFetchForRoles_FirstTwoRolesOnly tests the role bound and aggregation
func TestFetchForRoles_FirstTwoRolesOnly(t *testing.T) {
	var queried []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := r.URL.Query().Get("keywords")
		queried = append(queried, role)
		_, _ = fmt.Fprintf(w, "<ul>%s</ul>",
			jobCard(role, "Acme", "Remote", "https://jobs.example/"+role, "today"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs := c.FetchForRoles(context.Background(), []string{"one", "two", "three"})

	assert.Equal(t, []string{"one", "two"}, queried)
	assert.Len(t, jobs, 2)
}

// TestFetchForRoles_SkipsFailedRole tests per-role failure isolation
func TestFetchForRoles_SkipsFailedRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("keywords") == "broken" {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		_, _ = fmt.Fprintf(w, "<ul>%s</ul>",
			jobCard("Works", "Acme", "Remote", "https://jobs.example/ok", "today"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs := c.FetchForRoles(context.Background(), []string{"broken", "working"})

	require.Len(t, jobs, 1)
	assert.Equal(t, "Works", jobs[0].Position)
}

// TestFetchForRoles_DeduplicatesAcrossRoles tests cross-role URL dedup
func TestFetchForRoles_DeduplicatesAcrossRoles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, "<ul>%s</ul>",
			jobCard("Shared", "Acme", "Remote", "https://jobs.example/same", "today"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	jobs := c.FetchForRoles(context.Background(), []string{"one", "two"})
	assert.Len(t, jobs, 1)
}

// TestDedupeByURL tests first-occurrence preservation
func TestDedupeByURL(t *testing.T) {
	in := []Job{
		{Position: "first", JobURL: "u1"},
		{Position: "second", JobURL: "u2"},
		{Position: "dup of first", JobURL: "u1"},
	}
	got := DedupeByURL(in)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Position)
	assert.Equal(t, "second", got[1].Position)
}

// TestDedupeByURL_Empty tests the empty input edge
func TestDedupeByURL_Empty(t *testing.T) {
	assert.Empty(t, DedupeByURL(nil))
}
