package rest

import (
	"net/http"

	"github.com/harborbank/scoring-service/internal/application/dto"
)

// handleSimulate computes installment and cost for credit terms without
// scoring them.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulateCreditRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}

	resp, err := s.simulate.Execute(r.Context(), req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
