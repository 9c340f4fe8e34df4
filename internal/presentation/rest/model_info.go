package rest

import "net/http"

// handleModelInfo serves the static model descriptor.
func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.modelInfo.Execute(r.Context()))
}
