package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
)

// parseIDParam parses a UUID path parameter. A nil-UUID return with false
// means the response was already written.
func (s *Server) parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// handleGetPlacement returns a student's placement profile.
func (s *Server) handleGetPlacement(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	student, err := s.store.GetStudentByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if student == nil {
		s.errorResponse(w, http.StatusNotFound, "student not found")
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": student})
}

// handleUpdatePlacement applies placement-profile changes.
func (s *Server) handleUpdatePlacement(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req PlacementRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	student, err := s.store.UpdatePlacement(r.Context(), id, db.PlacementUpdate{
		RollNumber:      req.RollNumber,
		CurrentYear:     req.CurrentYear,
		CurrentSemester: req.CurrentSemester,
		SemesterGPAs:    db.GPAMap(req.SemesterGPAs),
		ResumeURL:       req.ResumeURL,
		ProfileImageURL: req.ProfileImageURL,
		LeetCodeHandle:  req.LeetCodeHandle,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if student == nil {
		s.errorResponse(w, http.StatusNotFound, "student not found")
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{
		"message": "Profile completed successfully",
		"data":    student,
	})
}
