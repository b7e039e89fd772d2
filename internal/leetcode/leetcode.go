// Package leetcode fetches solved-problem statistics from the LeetCode
// GraphQL API and normalizes them for prompt construction.
//
// This boundary never fails hard: a missing handle, an unknown user, or a
// provider outage all degrade to a Stats value carrying a Note, so the
// analysis pipeline can proceed without coding data.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"
)

// DefaultEndpoint is the public LeetCode GraphQL endpoint.
const DefaultEndpoint = "https://leetcode.com/graphql"

// Sentinel notes carried by Stats when data is unavailable.
const (
	NoteNotProvided = "Username not provided"
	NoteNotFound    = "User not found on LeetCode"
	NoteFetchFailed = "Failed to fetch LeetCode data"
)

// statsQuery requests submission counts and the three-tier topic breakdown.
const statsQuery = `
  query userProfile($username: String!) {
    matchedUser(username: $username) {
      submitStats: submitStatsGlobal {
        acSubmissionNum {
          difficulty
          count
        }
      }
      tagProblemCounts {
        advanced {
          tagName
          problemsSolved
        }
        intermediate {
          tagName
          problemsSolved
        }
        fundamental {
          tagName
          problemsSolved
        }
      }
    }
  }
`

// TopicCount is one problem topic with its solved count.
type TopicCount struct {
	Name   string `json:"topic_name"`
	Solved int    `json:"solved"`
}

// Stats is the normalized view of a user's LeetCode activity. A non-empty
// Note marks the value as an "unavailable" sentinel.
type Stats struct {
	Handle string       `json:"username,omitempty"`
	Total  int          `json:"total"`
	Easy   int          `json:"easy"`
	Medium int          `json:"medium"`
	Hard   int          `json:"hard"`
	Topics []TopicCount `json:"topics,omitempty"`
	Note   string       `json:"note,omitempty"`
}

// Available reports whether the stats carry real data.
func (s *Stats) Available() bool {
	return s.Note == ""
}

// unavailable builds a sentinel Stats.
func unavailable(note string) *Stats {
	return &Stats{Note: note}
}

// Client queries the LeetCode GraphQL API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client. endpoint and httpClient may be empty/nil for
// production defaults.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// wire types for the GraphQL response

type submissionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type tagCount struct {
	TagName        string `json:"tagName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

type statsResponse struct {
	Errors []json.RawMessage `json:"errors"`
	Data   struct {
		MatchedUser *struct {
			SubmitStats struct {
				AcSubmissionNum []submissionCount `json:"acSubmissionNum"`
			} `json:"submitStats"`
			TagProblemCounts struct {
				Advanced     []tagCount `json:"advanced"`
				Intermediate []tagCount `json:"intermediate"`
				Fundamental  []tagCount `json:"fundamental"`
			} `json:"tagProblemCounts"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// Fetch returns normalized stats for handle. It never returns an error;
// every failure path degrades to a sentinel Stats.
func (c *Client) Fetch(ctx context.Context, handle string) *Stats {
	if handle == "" {
		return unavailable(NoteNotProvided)
	}

	payload, err := json.Marshal(map[string]any{
		"query":     statsQuery,
		"variables": map[string]string{"username": handle},
	})
	if err != nil {
		return unavailable(NoteFetchFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return unavailable(NoteFetchFailed)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CareerCompass/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[leetcode] fetch failed for %q: %v", handle, err)
		return unavailable(NoteFetchFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[leetcode] fetch failed for %q: status %s", handle, resp.Status)
		return unavailable(NoteFetchFailed)
	}

	var decoded statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("[leetcode] malformed response for %q: %v", handle, err)
		return unavailable(NoteNotFound)
	}

	if len(decoded.Errors) > 0 || decoded.Data.MatchedUser == nil {
		return unavailable(NoteNotFound)
	}

	user := decoded.Data.MatchedUser
	return &Stats{
		Handle: handle,
		Total:  countFor(user.SubmitStats.AcSubmissionNum, "All"),
		Easy:   countFor(user.SubmitStats.AcSubmissionNum, "Easy"),
		Medium: countFor(user.SubmitStats.AcSubmissionNum, "Medium"),
		Hard:   countFor(user.SubmitStats.AcSubmissionNum, "Hard"),
		Topics: mergeTopics(
			user.TagProblemCounts.Fundamental,
			user.TagProblemCounts.Intermediate,
			user.TagProblemCounts.Advanced,
		),
	}
}

// countFor looks up the count for a difficulty label, defaulting to 0.
func countFor(counts []submissionCount, difficulty string) int {
	for _, c := range counts {
		if c.Difficulty == difficulty {
			return c.Count
		}
	}
	return 0
}

// mergeTopics flattens the tier lists into one list sorted descending by
// solved count. The sort is stable: ties keep encounter order.
func mergeTopics(tiers ...[]tagCount) []TopicCount {
	var merged []TopicCount
	for _, tier := range tiers {
		for _, tag := range tier {
			merged = append(merged, TopicCount{Name: tag.TagName, Solved: tag.ProblemsSolved})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Solved > merged[j].Solved
	})
	return merged
}
