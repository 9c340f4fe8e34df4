package usecase

import (
	"context"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/domain/port"
)

// ScoreFeatureVectorUseCase scores one pre-computed feature vector. This is
// the legacy shape kept for model-testing clients: no sanitization, no
// business rules, just scaler + model + threshold.
type ScoreFeatureVectorUseCase struct {
	model            port.ModelClient
	defaultThreshold float64
}

// NewScoreFeatureVectorUseCase wires dependencies.
func NewScoreFeatureVectorUseCase(model port.ModelClient, defaultThreshold float64) *ScoreFeatureVectorUseCase {
	return &ScoreFeatureVectorUseCase{
		model:            model,
		defaultThreshold: defaultThreshold,
	}
}

// Execute scores the vector carried by the raw payload.
func (uc *ScoreFeatureVectorUseCase) Execute(
	ctx context.Context,
	req dto.RawPredictRequest,
) (dto.RawPredictResponse, error) {
	threshold, err := parseThreshold(req.Payload["threshold"], uc.defaultThreshold)
	if err != nil {
		return dto.RawPredictResponse{}, err
	}

	info := uc.model.Info()
	vec, err := extractVector(req.Payload, info.NumFeatures, -1)
	if err != nil {
		return dto.RawPredictResponse{}, err
	}

	proba, err := uc.model.PredictProba(ctx, vec)
	if err != nil {
		return dto.RawPredictResponse{}, err
	}

	decision := 0
	if proba >= threshold {
		decision = 1
	}
	return dto.RawPredictResponse{
		ProbaTarget1: proba,
		Decision:     decision,
		Threshold:    threshold,
		ModelType:    info.ModelType,
	}, nil
}
