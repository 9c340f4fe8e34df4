package usecase

import (
	"context"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/internal/domain/service"
)

// GetModelInfoUseCase serves the static scoring descriptor: which model is
// loaded, the feature contract it expects, and the defaults applied to
// optional request controls.
type GetModelInfoUseCase struct {
	model            port.ModelClient
	defaultThreshold float64
}

// NewGetModelInfoUseCase wires dependencies.
func NewGetModelInfoUseCase(model port.ModelClient, defaultThreshold float64) *GetModelInfoUseCase {
	return &GetModelInfoUseCase{
		model:            model,
		defaultThreshold: defaultThreshold,
	}
}

// Execute returns the descriptor.
func (uc *GetModelInfoUseCase) Execute(ctx context.Context) dto.ModelInfoResponse {
	info := uc.model.Info()
	return dto.ModelInfoResponse{
		ModelType:          info.ModelType,
		NumFeatures:        info.NumFeatures,
		FeatureNames:       service.FeatureNames(),
		FeatureLayout:      service.FeatureLayoutVersion,
		UsesScaler:         info.UsesScaler,
		ThresholdDefault:   uc.defaultThreshold,
		AgentAdjustmentMin: model.AgentAdjustmentMin,
		AgentAdjustmentMax: model.AgentAdjustmentMax,
		GuardrailDefaults: dto.GuardrailDefaultsResponse{
			MaxDebtRatioAfter:   model.DefaultMaxDebtRatioAfter,
			MinResteAVivreAfter: model.DefaultMinResidualAfter,
		},
		DefaultAnnualRate: model.DefaultAnnualRate,
	}
}
