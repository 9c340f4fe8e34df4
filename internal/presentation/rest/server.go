// Package rest exposes the scoring API over HTTP. The raw prediction
// endpoints keep the wire contract of the original scoring API, French error
// messages included; the business endpoints add the sanitized application
// flow on top.
package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/harborbank/scoring-service/internal/application/usecase"
	"github.com/harborbank/scoring-service/internal/domain/model"
)

// Server wires the scoring use cases to their HTTP routes.
type Server struct {
	scoreApplication *usecase.ScoreApplicationUseCase
	scoreVector      *usecase.ScoreFeatureVectorUseCase
	scoreBatch       *usecase.ScoreFeatureBatchUseCase
	simulate         *usecase.SimulateCreditUseCase
	modelInfo        *usecase.GetModelInfoUseCase
	logger           *slog.Logger
}

// NewServer creates the REST handler set.
func NewServer(
	scoreApplication *usecase.ScoreApplicationUseCase,
	scoreVector *usecase.ScoreFeatureVectorUseCase,
	scoreBatch *usecase.ScoreFeatureBatchUseCase,
	simulate *usecase.SimulateCreditUseCase,
	modelInfo *usecase.GetModelInfoUseCase,
	logger *slog.Logger,
) *Server {
	return &Server{
		scoreApplication: scoreApplication,
		scoreVector:      scoreVector,
		scoreBatch:       scoreBatch,
		simulate:         simulate,
		modelInfo:        modelInfo,
		logger:           logger,
	}
}

// RegisterRoutes attaches the scoring routes to the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /predict", s.handlePredict)
	mux.HandleFunc("POST /predict/features", s.handlePredictFeatures)
	mux.HandleFunc("POST /predict/batch", s.handlePredictBatch)
	mux.HandleFunc("POST /simulate", s.handleSimulate)
	mux.HandleFunc("GET /model-info", s.handleModelInfo)
}

// decodeBody reads the request body into dst. An absent, empty, or
// unparseable body maps to the contract's "Body JSON manquant" error, as does
// a JSON null.
func decodeBody(r *http.Request, dst interface{}) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return model.NewValidationError("Body JSON manquant")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return model.NewValidationError("Body JSON manquant")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return model.NewValidationError("Body JSON manquant")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
