// Package port defines the interfaces the domain needs from the outside
// world. Implementations live under internal/infrastructure.
package port

import (
	"context"
	"errors"

	"github.com/harborbank/scoring-service/pkg/events"
)

// ErrUnsupportedModel signals that the configured artifact cannot produce
// class probabilities. It is a deployment problem, not a request problem,
// and is checked once at startup; the per-call path keeps returning it in
// case a broken artifact slips through.
var ErrUnsupportedModel = errors.New("model does not support probability output")

// ModelInfo describes the loaded artifact.
type ModelInfo struct {
	ModelType   string
	NumFeatures int
	UsesScaler  bool
}

// ModelClient is the port to the pre-trained classifier. Implementations must
// be safe for concurrent use: the artifact is loaded once and shared
// read-only across requests.
type ModelClient interface {
	// PredictProba returns the positive-class probability, in [0,1], for one
	// feature vector of exactly Info().NumFeatures elements.
	PredictProba(ctx context.Context, features []float64) (float64, error)

	// Info describes the artifact backing this client.
	Info() ModelInfo
}

// EventPublisher publishes domain events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, domainEvents ...events.DomainEvent) error
}
