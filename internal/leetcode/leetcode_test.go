package leetcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload.Query, "matchedUser")
		assert.NotEmpty(t, payload.Variables["username"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

// TestFetch_Success tests full normalization of a well-formed response
func TestFetch_Success(t *testing.T) {
	srv := statsServer(t, `{
		"data": {
			"matchedUser": {
				"submitStats": {
					"acSubmissionNum": [
						{"difficulty": "All", "count": 120},
						{"difficulty": "Easy", "count": 60},
						{"difficulty": "Medium", "count": 45},
						{"difficulty": "Hard", "count": 15}
					]
				},
				"tagProblemCounts": {
					"advanced": [{"tagName": "Dynamic Programming", "problemsSolved": 12}],
					"intermediate": [{"tagName": "Hash Table", "problemsSolved": 30}],
					"fundamental": [{"tagName": "Array", "problemsSolved": 50}]
				}
			}
		}
	}`)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "janedoe")

	require.True(t, stats.Available())
	assert.Equal(t, "janedoe", stats.Handle)
	assert.Equal(t, 120, stats.Total)
	assert.Equal(t, 60, stats.Easy)
	assert.Equal(t, 45, stats.Medium)
	assert.Equal(t, 15, stats.Hard)
	assert.Equal(t, []TopicCount{
		{Name: "Array", Solved: 50},
		{Name: "Hash Table", Solved: 30},
		{Name: "Dynamic Programming", Solved: 12},
	}, stats.Topics)
}

// TestFetch_MissingDifficultyDefaultsToZero tests absent labels defaulting to 0
func TestFetch_MissingDifficultyDefaultsToZero(t *testing.T) {
	srv := statsServer(t, `{
		"data": {
			"matchedUser": {
				"submitStats": {
					"acSubmissionNum": [{"difficulty": "Easy", "count": 7}]
				},
				"tagProblemCounts": {"advanced": [], "intermediate": [], "fundamental": []}
			}
		}
	}`)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "janedoe")

	require.True(t, stats.Available())
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 7, stats.Easy)
	assert.Equal(t, 0, stats.Medium)
	assert.Equal(t, 0, stats.Hard)
	assert.Empty(t, stats.Topics)
}

// TestFetch_EmptyHandle tests that no network call happens without a handle
func TestFetch_EmptyHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("unexpected request")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "")

	assert.False(t, stats.Available())
	assert.Equal(t, NoteNotProvided, stats.Note)
}

// TestFetch_UserNotFound tests the null-matchedUser sentinel
func TestFetch_UserNotFound(t *testing.T) {
	srv := statsServer(t, `{"data": {"matchedUser": null}}`)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "ghost")

	assert.False(t, stats.Available())
	assert.Equal(t, NoteNotFound, stats.Note)
}

// TestFetch_GraphQLErrors tests that API-level errors map to the not-found sentinel
func TestFetch_GraphQLErrors(t *testing.T) {
	srv := statsServer(t, `{"errors": [{"message": "user does not exist"}], "data": {"matchedUser": null}}`)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "ghost")

	assert.Equal(t, NoteNotFound, stats.Note)
}

// TestFetch_MalformedBody tests that undecodable responses degrade to a sentinel
func TestFetch_MalformedBody(t *testing.T) {
	srv := statsServer(t, `not json at all`)
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "janedoe")

	assert.False(t, stats.Available())
	assert.Equal(t, NoteNotFound, stats.Note)
}

// TestFetch_ServerError tests the fetch-failed sentinel on non-200 status
func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "janedoe")

	assert.Equal(t, NoteFetchFailed, stats.Note)
}

// TestFetch_NetworkError tests the fetch-failed sentinel when the host is unreachable
func TestFetch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // closed on purpose

	c := NewClient(srv.URL, nil)
	stats := c.Fetch(context.Background(), "janedoe")

	assert.Equal(t, NoteFetchFailed, stats.Note)
}

// TestMergeTopics tests flattening and stable descending order
func TestMergeTopics(t *testing.T) {
	got := mergeTopics(
		[]tagCount{{TagName: "a", ProblemsSolved: 1}, {TagName: "b", ProblemsSolved: 3}},
		[]tagCount{{TagName: "c", ProblemsSolved: 2}},
		nil,
	)
	assert.Equal(t, []TopicCount{
		{Name: "b", Solved: 3},
		{Name: "c", Solved: 2},
		{Name: "a", Solved: 1},
	}, got)
}

// TestMergeTopics_StableTies tests that equal counts keep encounter order
func TestMergeTopics_StableTies(t *testing.T) {
	got := mergeTopics(
		[]tagCount{{TagName: "first", ProblemsSolved: 5}},
		[]tagCount{{TagName: "second", ProblemsSolved: 5}},
	)
	assert.Equal(t, []TopicCount{
		{Name: "first", Solved: 5},
		{Name: "second", Solved: 5},
	}, got)
}
