package server

import "net/http"

// handleLeetCodeStats returns normalized coding stats for a handle.
// Lookup failures still produce a 200 body carrying an explanatory note;
// the stats are advisory and never block the caller.
func (s *Server) handleLeetCodeStats(w http.ResponseWriter, r *http.Request) {
	stats := s.stats.Fetch(r.Context(), r.PathValue("handle"))
	s.successResponse(w, http.StatusOK, map[string]any{"data": stats})
}
