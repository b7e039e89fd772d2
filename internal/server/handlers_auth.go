package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation. A false return means the response was already written.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validator.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}

// handleSignup creates a student account and issues a token.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	existing, err := s.store.GetStudentByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		err := &ErrEmailAlreadyExists{Email: req.Email}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	student, err := s.store.CreateStudent(r.Context(), req.FullName, req.Email, hash)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(student.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.successResponse(w, http.StatusCreated, map[string]any{
		"user":  student,
		"token": token,
	})
}

// handleLogin verifies credentials and issues a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	student, err := s.store.GetStudentByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if student == nil || !s.passwords.VerifyPassword(req.Password, student.PasswordHash) {
		invalid := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(student.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    student,
		"token":   token,
	})
}
