// Package jobsearch discovers live job postings through the LinkedIn guest
// search endpoint and normalizes them into Job values.
package jobsearch

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/career-compass/internal/fetch"
)

// DefaultBaseURL is the guest search endpoint. It serves rendered job cards
// without authentication.
const DefaultBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

// DefaultLocation is used when the caller does not supply one.
const DefaultLocation = "India"

// DefaultRoleDelay spaces consecutive role queries to stay polite.
const DefaultRoleDelay = 1000 * time.Millisecond

const (
	// maxRoles bounds how many suggested roles are searched.
	maxRoles = 2
	// jobsPerRole bounds how many postings one role query yields.
	jobsPerRole = 5
)

// Job is one normalized posting.
type Job struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Location string `json:"location"`
	JobURL   string `json:"jobUrl"`
	AgoTime  string `json:"agoTime"`
}

// Config controls a Client. Zero values take production defaults.
type Config struct {
	BaseURL    string
	Location   string
	RoleDelay  time.Duration
	UseBrowser bool
	HTTPClient *http.Client
}

// Client queries the guest search endpoint with a fixed filter set tuned for
// early-career candidates.
type Client struct {
	baseURL    string
	location   string
	roleDelay  time.Duration
	useBrowser bool
	httpClient *http.Client
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		location:   cfg.Location,
		roleDelay:  cfg.RoleDelay,
		useBrowser: cfg.UseBrowser,
		httpClient: cfg.HTTPClient,
	}
}

// experienceLevels maps caller-facing level names to the guest endpoint's
// f_E codes.
var experienceLevels = map[string]string{
	"internship":  "1",
	"entry level": "2",
	"associate":   "3",
	"senior":      "4",
	"director":    "5",
	"executive":   "6",
}

// Query is one standalone search request. Zero values take the client's
// defaults: its configured location, entry level, up to jobsPerRole results.
type Query struct {
	Keyword  string
	Location string
	Level    string
	Limit    int
}

// searchURL builds the query URL for one keyword. Posted within the past
// month, full time, remote, and 100k+ are always applied; location and
// experience level come from the query.
func (c *Client) searchURL(keyword, location, levelCode string) string {
	q := url.Values{}
	q.Set("keywords", keyword)
	q.Set("location", location)
	q.Set("f_TPR", "r2592000")
	q.Set("f_JT", "F")
	q.Set("f_WT", "2")
	q.Set("f_SAL", "4")
	q.Set("f_E", levelCode)
	q.Set("start", "0")
	return c.baseURL + "?" + q.Encode()
}

// Search runs one role query with the pipeline's fixed entry-level filters
// and returns up to jobsPerRole postings.
func (c *Client) Search(ctx context.Context, role string) ([]Job, error) {
	return c.SearchQuery(ctx, Query{Keyword: role})
}

// SearchQuery runs one caller-configured query against the guest endpoint.
// Unknown level names fall back to entry level.
func (c *Client) SearchQuery(ctx context.Context, q Query) ([]Job, error) {
	location := q.Location
	if location == "" {
		location = c.location
	}
	level, ok := experienceLevels[strings.ToLower(q.Level)]
	if !ok {
		level = experienceLevels["entry level"]
	}
	limit := q.Limit
	if limit <= 0 {
		limit = jobsPerRole
	}

	target := c.searchURL(q.Keyword, location, level)

	opts := fetch.DefaultOptions()
	opts.Client = c.httpClient

	result, err := fetch.URL(ctx, target, opts)
	if err != nil {
		return nil, &SearchError{Role: q.Keyword, Cause: err}
	}

	html := string(result.Body)
	if c.useBrowser && fetch.ShouldUseBrowser(html) {
		html, err = fetch.WithBrowser(ctx, target, fetch.DefaultBrowserTimeout)
		if err != nil {
			return nil, &SearchError{Role: q.Keyword, Cause: err}
		}
	}

	jobs, err := parseJobCards(html)
	if err != nil {
		return nil, &SearchError{Role: q.Keyword, Cause: err}
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

// FetchForRoles searches the first maxRoles entries of roles and returns the
// combined, URL-deduplicated postings. A failed role query is logged and
// skipped; the method itself never fails.
func (c *Client) FetchForRoles(ctx context.Context, roles []string) []Job {
	if len(roles) > maxRoles {
		roles = roles[:maxRoles]
	}
	log.Printf("[jobsearch] fetching jobs for roles: %s", strings.Join(roles, ", "))

	var all []Job
	for _, role := range roles {
		jobs, err := c.Search(ctx, role)
		if err != nil {
			log.Printf("[jobsearch] failed to fetch jobs for %q: %v", role, err)
			continue
		}
		all = append(all, jobs...)
		c.sleep(ctx)
	}

	unique := DedupeByURL(all)
	log.Printf("[jobsearch] found %d unique jobs", len(unique))
	return unique
}

// sleep waits roleDelay, returning early when ctx is done.
func (c *Client) sleep(ctx context.Context) {
	if c.roleDelay <= 0 {
		return
	}
	select {
	case <-time.After(c.roleDelay):
	case <-ctx.Done():
	}
}

// DedupeByURL drops postings whose URL was already seen, keeping the first
// occurrence in input order.
func DedupeByURL(jobs []Job) []Job {
	seen := make(map[string]bool, len(jobs))
	unique := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if seen[job.JobURL] {
			continue
		}
		seen[job.JobURL] = true
		unique = append(unique, job)
	}
	return unique
}

// parseJobCards extracts postings from guest search HTML.
func parseJobCards(html string) ([]Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var jobs []Job
	doc.Find("li").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a.base-card__full-link")
		jobURL, _ := link.Attr("href")
		if jobURL == "" {
			return
		}

		jobs = append(jobs, Job{
			Position: cleanText(card.Find(".base-search-card__title").Text()),
			Company:  cleanText(card.Find(".base-search-card__subtitle").Text()),
			Location: cleanText(card.Find(".job-search-card__location").Text()),
			JobURL:   strings.TrimSpace(jobURL),
			AgoTime:  cleanText(card.Find("time").Text()),
		})
	})
	return jobs, nil
}

// cleanText collapses the whitespace LinkedIn pads card fields with.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
