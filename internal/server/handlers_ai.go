package server

import (
	"net/http"

	"github.com/jonathan/career-compass/internal/catalog"
)

// handleFullAnalysis runs the whole pipeline: profile synthesis, job
// discovery, per-job skill extraction and the final gap report.
func (s *Server) handleFullAnalysis(w http.ResponseWriter, r *http.Request) {
	var req FullAnalysisRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.analyzer.RunFullAnalysis(r.Context(), req.LeetCodeUsername, req.ResumeURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	payload := map[string]any{
		"user_summary": result.Profile,
		"report":       result.Report,
	}
	if result.Message != "" {
		payload["message"] = result.Message
	} else {
		payload["jobs_found_count"] = result.JobsFoundCount
	}
	s.successResponse(w, http.StatusOK, payload)
}

// handleTargetCompany runs the one-shot comparison against a catalog entry.
func (s *Server) handleTargetCompany(w http.ResponseWriter, r *http.Request) {
	var req TargetCompanyRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	fit, err := s.analyzer.RunTargetCompanyAnalysis(r.Context(), req.LeetCodeUsername, req.ResumeURL, req.CompanyName)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": fit})
}

// handleListCompanies returns the built-in target-company catalog.
func (s *Server) handleListCompanies(w http.ResponseWriter, _ *http.Request) {
	s.successResponse(w, http.StatusOK, map[string]any{"data": catalog.All()})
}
