// Package books proxies search queries to the dBooks open-book catalog and
// normalizes results for the frontend.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jonathan/career-compass/internal/fetch"
)

// DefaultBaseURL is the public dBooks API root.
const DefaultBaseURL = "https://www.dbooks.org"

// maxResults caps how many books one search returns.
const maxResults = 12

// Book is one normalized catalog entry.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Authors     string `json:"authors"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

// Client queries the book catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. baseURL and httpClient may be empty/nil for
// production defaults.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// searchResponse is the provider's wire shape.
type searchResponse struct {
	Status string `json:"status"`
	Books  []struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Authors  string `json:"authors"`
		Image    string `json:"image"`
		URL      string `json:"url"`
	} `json:"books"`
}

// Search queries the catalog and returns up to maxResults normalized books.
// A provider response without results yields an empty list, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Book, error) {
	opts := fetch.DefaultOptions()
	opts.Client = c.httpClient
	opts.Headers = map[string]string{"Referer": c.baseURL + "/"}

	result, err := fetch.URL(ctx, c.baseURL+"/api/search/"+url.PathEscape(query), opts)
	if err != nil {
		return nil, fmt.Errorf("book search failed: %w", err)
	}

	var decoded searchResponse
	if err := json.Unmarshal(result.Body, &decoded); err != nil {
		return nil, fmt.Errorf("book search returned malformed response: %w", err)
	}
	if decoded.Status != "ok" || len(decoded.Books) == 0 {
		return []Book{}, nil
	}

	raw := decoded.Books
	if len(raw) > maxResults {
		raw = raw[:maxResults]
	}

	books := make([]Book, 0, len(raw))
	for _, b := range raw {
		subtitle := b.Subtitle
		if subtitle == "" {
			subtitle = "Tech Book"
		}
		books = append(books, Book{
			ID:          b.ID,
			Title:       b.Title,
			Subtitle:    subtitle,
			Description: fmt.Sprintf("Title: %s. Author: %s.", b.Title, b.Authors),
			Authors:     b.Authors,
			Image:       b.Image,
			URL:         b.URL,
		})
	}
	return books, nil
}
