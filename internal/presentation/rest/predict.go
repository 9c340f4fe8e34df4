package rest

import (
	"net/http"

	"github.com/harborbank/scoring-service/internal/application/dto"
)

// handlePredict scores a sanitized business application.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req dto.ScoreApplicationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}

	resp, err := s.scoreApplication.Execute(r.Context(), req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handlePredictFeatures scores one pre-computed feature vector, keyed
// var_0..var_N or nested under "features".
func (s *Server) handlePredictFeatures(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, s.logger, err)
		return
	}

	resp, err := s.scoreVector.Execute(r.Context(), dto.RawPredictRequest{Payload: payload})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handlePredictBatch scores every row of {"rows": [...]} or rejects the whole
// batch on the first bad row.
func (s *Server) handlePredictBatch(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, s.logger, err)
		return
	}

	resp, err := s.scoreBatch.Execute(r.Context(), dto.RawBatchRequest{Payload: payload})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
