// Package messaging provides the broker-less event publisher used in
// development and in deployments that run without Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/harborbank/scoring-service/pkg/events"
)

// LoggingPublisher implements port.EventPublisher by writing events to the
// structured log instead of a broker.
type LoggingPublisher struct {
	logger *slog.Logger
}

// NewLoggingPublisher creates a log-only event publisher.
func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

// Publish logs each domain event at debug level.
func (p *LoggingPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		p.logger.DebugContext(ctx, "domain event",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("payload", string(payload)),
		)
	}
	return nil
}
