package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
)

// handleSaveAppliedJob records a posting a student saved.
func (s *Server) handleSaveAppliedJob(w http.ResponseWriter, r *http.Request) {
	var req AppliedJobRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid student_id")
		return
	}

	saved, err := s.store.SaveAppliedJob(r.Context(), db.AppliedJob{
		StudentID:   studentID,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
		JobURL:      req.JobURL,
		Location:    req.Location,
		PostedDate:  req.PostedDate,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			s.errorResponse(w, http.StatusConflict, "Job already saved by this student.")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.successResponse(w, http.StatusCreated, map[string]any{
		"message": "Job saved successfully",
		"data":    saved,
	})
}

// handleListAppliedJobs returns a student's saved postings.
func (s *Server) handleListAppliedJobs(w http.ResponseWriter, r *http.Request) {
	studentID, ok := s.parseIDParam(w, r, "studentId")
	if !ok {
		return
	}

	jobs, err := s.store.ListAppliedJobs(r.Context(), studentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": jobs})
}

// handleDeleteAppliedJob removes a saved posting.
func (s *Server) handleDeleteAppliedJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteAppliedJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "applied job not found")
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"message": "Applied job removed"})
}
