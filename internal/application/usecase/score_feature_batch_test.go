package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/application/usecase"
)

func batchRow(base float64) map[string]interface{} {
	return map[string]interface{}{
		"var_0": base, "var_1": 1.0, "var_2": 1.0, "var_3": 1.0, "var_4": 1.0,
	}
}

func TestScoreFeatureBatch_Execute(t *testing.T) {
	t.Run("scores every row against one threshold", func(t *testing.T) {
		model := smallModel(0)
		model.predictFunc = func(_ context.Context, features []float64) (float64, error) {
			return features[0], nil // proba = var_0
		}
		uc := usecase.NewScoreFeatureBatchUseCase(model, 0.5)

		payload := map[string]interface{}{
			"rows": []interface{}{batchRow(0.9), batchRow(0.1)},
		}
		resp, err := uc.Execute(context.Background(), dto.RawBatchRequest{Payload: payload})
		require.NoError(t, err)

		assert.Equal(t, 0.5, resp.Threshold)
		assert.Equal(t, "logistic_regression", resp.ModelType)
		require.Len(t, resp.Predictions, 2)
		assert.Equal(t, 0.9, resp.Predictions[0].ProbaTarget1)
		assert.Equal(t, 1, resp.Predictions[0].Decision)
		assert.Equal(t, 0.1, resp.Predictions[1].ProbaTarget1)
		assert.Equal(t, 0, resp.Predictions[1].Decision)
	})

	t.Run("rejects a missing or empty rows list", func(t *testing.T) {
		uc := usecase.NewScoreFeatureBatchUseCase(smallModel(0.5), 0.5)

		for _, payload := range []map[string]interface{}{
			{},
			{"rows": []interface{}{}},
			{"rows": "not a list"},
		} {
			_, err := uc.Execute(context.Background(), dto.RawBatchRequest{Payload: payload})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "rows doit être une liste non vide")
		}
	})

	t.Run("reports the failing row index", func(t *testing.T) {
		uc := usecase.NewScoreFeatureBatchUseCase(smallModel(0.5), 0.5)

		payload := map[string]interface{}{
			"rows": []interface{}{
				batchRow(0.9),
				map[string]interface{}{"var_0": 1.0}, // missing the rest
			},
		}
		_, err := uc.Execute(context.Background(), dto.RawBatchRequest{Payload: payload})
		require.Error(t, err)

		var missing *usecase.MissingFeaturesError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 1, missing.RowIndex)
		assert.Len(t, missing.Missing, 4)
	})

	t.Run("rejects a row that is not an object", func(t *testing.T) {
		uc := usecase.NewScoreFeatureBatchUseCase(smallModel(0.5), 0.5)

		payload := map[string]interface{}{
			"rows": []interface{}{42.0},
		}
		_, err := uc.Execute(context.Background(), dto.RawBatchRequest{Payload: payload})
		require.Error(t, err)

		var invalid *usecase.InvalidFeatureValuesError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 0, invalid.RowIndex)
	})

	t.Run("validates rows before scoring any of them", func(t *testing.T) {
		model := smallModel(0.5)
		uc := usecase.NewScoreFeatureBatchUseCase(model, 0.5)

		payload := map[string]interface{}{
			"rows": []interface{}{
				batchRow(0.9),
				map[string]interface{}{"var_0": "oops"},
			},
		}
		_, err := uc.Execute(context.Background(), dto.RawBatchRequest{Payload: payload})
		require.Error(t, err)
		assert.Equal(t, 0, model.calls)
	})
}
