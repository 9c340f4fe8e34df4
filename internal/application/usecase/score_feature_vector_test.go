package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/application/usecase"
	"github.com/harborbank/scoring-service/internal/domain/port"
)

// smallModel pretends to be a 5-feature artifact so payloads stay readable.
func smallModel(score float64) *mockModelClient {
	return &mockModelClient{
		predictFunc: fixedScore(score),
		info:        port.ModelInfo{ModelType: "logistic_regression", NumFeatures: 5},
	}
}

func flatVarPayload() map[string]interface{} {
	return map[string]interface{}{
		"var_0": 1.0, "var_1": 2.0, "var_2": 3.0, "var_3": 4.0, "var_4": 5.0,
	}
}

func TestScoreFeatureVector_Execute(t *testing.T) {
	t.Run("scores a flat var payload", func(t *testing.T) {
		uc := usecase.NewScoreFeatureVectorUseCase(smallModel(0.73), 0.5)

		resp, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: flatVarPayload()})
		require.NoError(t, err)

		assert.Equal(t, 0.73, resp.ProbaTarget1)
		assert.Equal(t, 1, resp.Decision)
		assert.Equal(t, 0.5, resp.Threshold)
		assert.Equal(t, "logistic_regression", resp.ModelType)
	})

	t.Run("supports the nested features object with a threshold", func(t *testing.T) {
		uc := usecase.NewScoreFeatureVectorUseCase(smallModel(0.73), 0.5)

		payload := map[string]interface{}{
			"features":  flatVarPayload(),
			"threshold": 0.8,
		}
		resp, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Decision) // 0.73 < 0.8
		assert.Equal(t, 0.8, resp.Threshold)
	})

	t.Run("supports a features array", func(t *testing.T) {
		model := smallModel(0.4)
		model.predictFunc = func(_ context.Context, features []float64) (float64, error) {
			assert.Equal(t, []float64{1, 2, 3, 4, 5}, features)
			return 0.4, nil
		}
		uc := usecase.NewScoreFeatureVectorUseCase(model, 0.5)

		payload := map[string]interface{}{
			"features": []interface{}{1.0, 2.0, 3.0, 4.0, 5.0},
		}
		resp, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Decision)
	})

	t.Run("rejects a features array of the wrong width", func(t *testing.T) {
		uc := usecase.NewScoreFeatureVectorUseCase(smallModel(0.4), 0.5)

		payload := map[string]interface{}{"features": []interface{}{1.0, 2.0}}
		_, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactement 5 valeurs")
	})

	t.Run("accepts numeric strings like the original API", func(t *testing.T) {
		model := smallModel(0.9)
		model.predictFunc = func(_ context.Context, features []float64) (float64, error) {
			return features[0], nil
		}
		uc := usecase.NewScoreFeatureVectorUseCase(model, 0.5)

		payload := map[string]interface{}{
			"var_0": "0.25", "var_1": "2", "var_2": 3, "var_3": true, "var_4": 5.0,
		}
		resp, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.NoError(t, err)
		assert.Equal(t, 0.25, resp.ProbaTarget1)
	})

	t.Run("reports every missing feature", func(t *testing.T) {
		uc := usecase.NewScoreFeatureVectorUseCase(smallModel(0.5), 0.5)

		payload := map[string]interface{}{"var_0": 1.0}
		_, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.Error(t, err)

		var missing *usecase.MissingFeaturesError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, -1, missing.RowIndex)
		assert.Equal(t, []string{"var_1", "var_2", "var_3", "var_4"}, missing.Missing)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		uc := usecase.NewScoreFeatureVectorUseCase(smallModel(0.5), 0.5)

		payload := flatVarPayload()
		payload["var_2"] = "NaN"
		_, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.Error(t, err)

		var invalid *usecase.InvalidFeatureValuesError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, -1, invalid.RowIndex)
	})

	t.Run("rejects an out-of-range threshold", func(t *testing.T) {
		uc := usecase.NewScoreFeatureVectorUseCase(smallModel(0.5), 0.5)

		payload := flatVarPayload()
		payload["threshold"] = 2.0
		_, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: payload})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold doit être compris entre 0 et 1")
	})

	t.Run("propagates model failures", func(t *testing.T) {
		model := smallModel(0)
		model.predictFunc = func(_ context.Context, _ []float64) (float64, error) {
			return 0, fmt.Errorf("artifact gone")
		}
		uc := usecase.NewScoreFeatureVectorUseCase(model, 0.5)

		_, err := uc.Execute(context.Background(), dto.RawPredictRequest{Payload: flatVarPayload()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "artifact gone")
	})
}
