package usecase

import (
	"context"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/port"
)

// ScoreFeatureBatchUseCase scores a batch of pre-computed feature vectors in
// one request. Rows are validated eagerly: the first malformed row fails the
// whole batch before anything is scored.
type ScoreFeatureBatchUseCase struct {
	model            port.ModelClient
	defaultThreshold float64
}

// NewScoreFeatureBatchUseCase wires dependencies.
func NewScoreFeatureBatchUseCase(model port.ModelClient, defaultThreshold float64) *ScoreFeatureBatchUseCase {
	return &ScoreFeatureBatchUseCase{
		model:            model,
		defaultThreshold: defaultThreshold,
	}
}

// Execute scores every row of the batch payload.
func (uc *ScoreFeatureBatchUseCase) Execute(
	ctx context.Context,
	req dto.RawBatchRequest,
) (dto.RawBatchResponse, error) {
	rawRows, ok := req.Payload["rows"].([]interface{})
	if !ok || len(rawRows) == 0 {
		return dto.RawBatchResponse{}, model.NewValidationError("rows doit être une liste non vide")
	}

	threshold, err := parseThreshold(req.Payload["threshold"], uc.defaultThreshold)
	if err != nil {
		return dto.RawBatchResponse{}, err
	}

	info := uc.model.Info()
	vectors := make([][]float64, 0, len(rawRows))
	for idx, rawRow := range rawRows {
		row, ok := rawRow.(map[string]interface{})
		if !ok {
			return dto.RawBatchResponse{}, &InvalidFeatureValuesError{RowIndex: idx}
		}
		vec, err := extractVector(row, info.NumFeatures, idx)
		if err != nil {
			return dto.RawBatchResponse{}, err
		}
		vectors = append(vectors, vec)
	}

	predictions := make([]dto.RawPredictionResult, 0, len(vectors))
	for _, vec := range vectors {
		proba, err := uc.model.PredictProba(ctx, vec)
		if err != nil {
			return dto.RawBatchResponse{}, err
		}
		decision := 0
		if proba >= threshold {
			decision = 1
		}
		predictions = append(predictions, dto.RawPredictionResult{
			ProbaTarget1: proba,
			Decision:     decision,
		})
	}

	return dto.RawBatchResponse{
		Threshold:   threshold,
		ModelType:   info.ModelType,
		Predictions: predictions,
	}, nil
}
