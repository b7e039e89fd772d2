package server

import (
	"net/http"

	"github.com/google/uuid"
)

// handleListProjects returns a student's portfolio projects.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	studentID, ok := s.parseIDParam(w, r, "studentId")
	if !ok {
		return
	}

	projects, err := s.store.ListProjects(r.Context(), studentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": projects})
}

// handleCreateProject adds a portfolio project.
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid studentId")
		return
	}

	project, err := s.store.CreateProject(r.Context(), studentID, req.Title, req.Link, req.Tags, req.Description)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, http.StatusCreated, map[string]any{"data": project})
}

// handleUpdateProject replaces a project's editable fields.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req ProjectUpdateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	project, err := s.store.UpdateProject(r.Context(), projectID, req.Title, req.Link, req.Tags, req.Description)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if project == nil {
		s.errorResponse(w, http.StatusNotFound, "project not found")
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": project})
}

// handleDeleteProject removes a portfolio project.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := s.parseIDParam(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.store.DeleteProject(r.Context(), projectID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "project not found")
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"message": "Project deleted"})
}
