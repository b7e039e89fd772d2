package server

import (
	"net/http"

	"github.com/jonathan/career-compass/internal/analysis"
	"github.com/jonathan/career-compass/internal/jobsearch"
)

// browseJobsLimit caps one standalone search. Wider than the pipeline's
// per-role cap since the caller sees these directly.
const browseJobsLimit = 20

// handleSearchJobs runs a one-off posting search with caller-supplied
// query, location, and experience level.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	keyword := params.Get("query")
	if keyword == "" {
		keyword = analysis.DefaultRole
	}

	jobs, err := s.jobs.SearchQuery(r.Context(), jobsearch.Query{
		Keyword:  keyword,
		Location: params.Get("location"),
		Level:    params.Get("level"),
		Limit:    browseJobsLimit,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch jobs from LinkedIn. Please try again.")
		return
	}

	if jobs == nil {
		jobs = []jobsearch.Job{}
	}
	s.successResponse(w, http.StatusOK, map[string]any{"data": jobs})
}
