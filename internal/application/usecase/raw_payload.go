package usecase

import (
	"fmt"
	"math"

	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/pkg/numeric"
)

// MissingFeaturesError reports absent var_N keys in a raw feature payload.
// RowIndex is -1 when the payload is not part of a batch.
type MissingFeaturesError struct {
	RowIndex int
	Missing  []string
}

func (e *MissingFeaturesError) Error() string {
	if e.RowIndex >= 0 {
		return fmt.Sprintf("Features manquantes sur la ligne %d", e.RowIndex)
	}
	return "Features manquantes"
}

// InvalidFeatureValuesError reports non-numeric or non-finite values in a raw
// feature payload. RowIndex is -1 when the payload is not part of a batch.
type InvalidFeatureValuesError struct {
	RowIndex int
}

func (e *InvalidFeatureValuesError) Error() string {
	if e.RowIndex >= 0 {
		return fmt.Sprintf("Valeurs invalides (NaN/inf ou non numérique) sur la ligne %d", e.RowIndex)
	}
	return "Valeurs invalides : NaN/inf ou valeurs non numériques"
}

// parseThreshold resolves an optional threshold value. Absent values fall
// back to the configured default; present values must be numeric and inside
// [0, 1].
func parseThreshold(v interface{}, def float64) (float64, error) {
	if v == nil {
		return def, nil
	}
	f, ok := numeric.TryFloat(v)
	if !ok {
		return 0, model.NewValidationError("threshold doit être un nombre")
	}
	if !(f >= 0 && f <= 1) {
		return 0, model.NewValidationError("threshold doit être compris entre 0 et 1")
	}
	return f, nil
}

// extractVector pulls a width-sized feature vector out of a raw payload. The
// payload either nests the values under "features" (as a var_N map or a plain
// array) or spreads var_0..var_{width-1} keys at the top level. All keys must
// be present; every value must convert to a finite number.
func extractVector(payload map[string]interface{}, width, rowIndex int) ([]float64, error) {
	if nested, ok := payload["features"]; ok {
		switch f := nested.(type) {
		case []interface{}:
			return vectorFromList(f, width, rowIndex)
		case map[string]interface{}:
			payload = f
		default:
			return nil, &InvalidFeatureValuesError{RowIndex: rowIndex}
		}
	}
	return vectorFromKeys(payload, width, rowIndex)
}

func vectorFromKeys(payload map[string]interface{}, width, rowIndex int) ([]float64, error) {
	var missing []string
	for i := 0; i < width; i++ {
		if _, ok := payload[featureKey(i)]; !ok {
			missing = append(missing, featureKey(i))
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFeaturesError{RowIndex: rowIndex, Missing: missing}
	}

	vec := make([]float64, width)
	for i := range vec {
		f, ok := numeric.TryFloat(payload[featureKey(i)])
		if !ok || !isFinite(f) {
			return nil, &InvalidFeatureValuesError{RowIndex: rowIndex}
		}
		vec[i] = f
	}
	return vec, nil
}

func vectorFromList(values []interface{}, width, rowIndex int) ([]float64, error) {
	if len(values) != width {
		return nil, model.NewValidationError(
			fmt.Sprintf("features doit contenir exactement %d valeurs", width),
		)
	}
	vec := make([]float64, width)
	for i, v := range values {
		f, ok := numeric.TryFloat(v)
		if !ok || !isFinite(f) {
			return nil, &InvalidFeatureValuesError{RowIndex: rowIndex}
		}
		vec[i] = f
	}
	return vec, nil
}

func featureKey(i int) string {
	return fmt.Sprintf("var_%d", i)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
