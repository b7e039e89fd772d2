package server

import "net/http"

// handleSearchBooks proxies a query to the book catalog.
func (s *Server) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	results, err := s.books.Search(r.Context(), query)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": results})
}
