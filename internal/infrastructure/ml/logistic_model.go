package ml

import (
	"context"
	"fmt"
	"math"

	"github.com/harborbank/scoring-service/internal/domain/port"
)

// ModelTypeLogisticRegression is the only artifact family this build can
// serve probabilities for.
const ModelTypeLogisticRegression = "logistic_regression"

// LogisticModel serves predictions from a logistic-regression artifact. It is
// pure arithmetic over immutable weights and safe for concurrent use.
type LogisticModel struct {
	modelType    string
	intercept    float64
	coefficients []float64
	scaler       *standardScaler
}

// NewModelClient builds a model client from a validated artifact. Artifact
// families without probability output are rejected with
// port.ErrUnsupportedModel; the composition root treats that as fatal so a
// misconfigured deployment fails at startup, not on the first request.
func NewModelClient(artifact *ModelArtifact) (port.ModelClient, error) {
	if artifact.ModelType != ModelTypeLogisticRegression {
		return nil, fmt.Errorf("model type %q: %w", artifact.ModelType, port.ErrUnsupportedModel)
	}

	m := &LogisticModel{
		modelType:    artifact.ModelType,
		intercept:    artifact.Intercept,
		coefficients: artifact.Coefficients,
	}
	if artifact.Scaler != nil {
		m.scaler = newStandardScaler(artifact.Scaler)
	}
	return m, nil
}

// PredictProba returns the probability of the positive class (refusal) for
// one feature vector.
func (m *LogisticModel) PredictProba(_ context.Context, features []float64) (float64, error) {
	if len(features) != len(m.coefficients) {
		return 0, fmt.Errorf("feature vector has %d values, want %d", len(features), len(m.coefficients))
	}

	x := features
	if m.scaler != nil {
		x = m.scaler.transform(features)
	}

	z := m.intercept
	for i, w := range m.coefficients {
		z += w * x[i]
	}
	return sigmoid(z), nil
}

// Info describes the loaded artifact.
func (m *LogisticModel) Info() port.ModelInfo {
	return port.ModelInfo{
		ModelType:   m.modelType,
		NumFeatures: len(m.coefficients),
		UsesScaler:  m.scaler != nil,
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
