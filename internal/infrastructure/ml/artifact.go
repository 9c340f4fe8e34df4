// Package ml loads trained model artifacts and serves predictions from them
// in-process. Artifacts are JSON exports of the training pipeline: weights,
// intercept, and the optional standardization parameters baked in at training
// time.
package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModelArtifact mirrors the JSON layout exported by the training pipeline.
type ModelArtifact struct {
	ModelType    string          `json:"model_type"`
	NumFeatures  int             `json:"n_features"`
	Intercept    float64         `json:"intercept"`
	Coefficients []float64       `json:"coefficients"`
	Scaler       *ScalerArtifact `json:"scaler,omitempty"`
}

// ScalerArtifact carries per-feature standardization parameters.
type ScalerArtifact struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*ModelArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var artifact ModelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("validate model artifact: %w", err)
	}
	return &artifact, nil
}

func (a *ModelArtifact) validate() error {
	if a.ModelType == "" {
		return fmt.Errorf("model_type is empty")
	}
	if a.NumFeatures <= 0 {
		return fmt.Errorf("n_features must be positive, got %d", a.NumFeatures)
	}
	if len(a.Coefficients) != a.NumFeatures {
		return fmt.Errorf("got %d coefficients, want %d", len(a.Coefficients), a.NumFeatures)
	}
	if a.Scaler != nil {
		if len(a.Scaler.Mean) != a.NumFeatures {
			return fmt.Errorf("scaler has %d means, want %d", len(a.Scaler.Mean), a.NumFeatures)
		}
		if len(a.Scaler.Scale) != a.NumFeatures {
			return fmt.Errorf("scaler has %d scales, want %d", len(a.Scaler.Scale), a.NumFeatures)
		}
	}
	return nil
}
