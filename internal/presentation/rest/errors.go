package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/harborbank/scoring-service/internal/application/usecase"
	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/port"
)

// maxMissingReported caps the missing-feature list echoed to the caller.
const maxMissingReported = 10

// writeError maps application errors onto the wire contract. Validation
// problems are 400s carrying the original French messages; anything else is a
// 500 with the error detail.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var missingErr *usecase.MissingFeaturesError
	var invalidErr *usecase.InvalidFeatureValuesError
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &missingErr):
		payload := map[string]interface{}{
			"error":         missingErr.Error(),
			"missing":       head(missingErr.Missing, maxMissingReported),
			"missing_count": len(missingErr.Missing),
		}
		if missingErr.RowIndex >= 0 {
			payload["row_index"] = missingErr.RowIndex
		}
		writeJSON(w, http.StatusBadRequest, payload)

	case errors.As(err, &invalidErr):
		payload := map[string]interface{}{"error": invalidErr.Error()}
		if invalidErr.RowIndex >= 0 {
			payload["row_index"] = invalidErr.RowIndex
		}
		writeJSON(w, http.StatusBadRequest, payload)

	case errors.As(err, &validationErr):
		payload := map[string]interface{}{"error": validationErr.Message}
		if len(validationErr.Fields) > 0 {
			payload["fields"] = validationErr.Fields
		}
		writeJSON(w, http.StatusBadRequest, payload)

	case errors.Is(err, port.ErrUnsupportedModel):
		logger.Error("model cannot predict probabilities", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "Le modèle ne supporte pas la prédiction de probabilités.",
		})

	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Erreur interne serveur",
			"details": err.Error(),
		})
	}
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
