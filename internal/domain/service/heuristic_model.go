package service

import (
	"context"
	"fmt"

	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/pkg/numeric"
)

// ModelTypeHeuristic identifies the rule-based fallback in model-info
// responses and logs.
const ModelTypeHeuristic = "heuristic"

// Heuristic weights. Risk starts at the midpoint; stable employment and
// tenure pull it down, heavy post-credit burden pushes it up.
const (
	heuristicBase           = 0.5
	heuristicPermanentBonus = 0.15
	heuristicSeniorityBonus = 0.10
	heuristicResidenceBonus = 0.05
	heuristicDebtPenalty    = 0.20
	heuristicChargesPenalty = 0.15

	heuristicSeniorityFloorMonths = 24
	heuristicResidenceFloorYears  = 3
	heuristicDebtRatioCeiling     = 0.33
	heuristicChargesRatioCeiling  = 0.5
)

// HeuristicModel scores feature vectors without a trained artifact. It is
// the startup fallback when no model path is configured: a short list of
// additive risk rules over the named slots of the feature layout. Keeping it
// behind the same port as the trained model means the rest of the service
// cannot tell the two apart.
type HeuristicModel struct{}

// NewHeuristicModel creates the rule-based fallback scorer.
func NewHeuristicModel() *HeuristicModel {
	return &HeuristicModel{}
}

// PredictProba returns the heuristic probability of refusal for a layout-v2
// vector.
func (m *HeuristicModel) PredictProba(_ context.Context, features []float64) (float64, error) {
	if len(features) != FeatureVectorWidth {
		return 0, fmt.Errorf("feature vector has %d values, want %d", len(features), FeatureVectorWidth)
	}

	risk := heuristicBase
	if features[idxEmploymentStart] == 1 {
		risk -= heuristicPermanentBonus
	}
	if features[idxSeniority] > heuristicSeniorityFloorMonths {
		risk -= heuristicSeniorityBonus
	}
	if features[idxResidenceYears] > heuristicResidenceFloorYears {
		risk -= heuristicResidenceBonus
	}
	if features[idxDebtRatioAfter] > heuristicDebtRatioCeiling {
		risk += heuristicDebtPenalty
	}
	if features[idxChargesRatio] > heuristicChargesRatioCeiling {
		risk += heuristicChargesPenalty
	}
	return numeric.Clamp(risk, 0, 1), nil
}

// Info describes the fallback for the model-info endpoint.
func (m *HeuristicModel) Info() port.ModelInfo {
	return port.ModelInfo{
		ModelType:   ModelTypeHeuristic,
		NumFeatures: FeatureVectorWidth,
	}
}
