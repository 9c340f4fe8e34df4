package messaging

import (
	"context"
	"log/slog"

	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/pkg/events"
)

// BestEffortPublisher wraps another publisher and downgrades its failures to
// warnings. Scoring responses must not depend on broker availability, so the
// composition root wraps the Kafka publisher in this decorator.
type BestEffortPublisher struct {
	next   port.EventPublisher
	logger *slog.Logger
}

// NewBestEffortPublisher decorates next so that publish failures are logged
// instead of propagated.
func NewBestEffortPublisher(next port.EventPublisher, logger *slog.Logger) *BestEffortPublisher {
	return &BestEffortPublisher{next: next, logger: logger}
}

// Publish forwards to the wrapped publisher and swallows its error.
func (p *BestEffortPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	if err := p.next.Publish(ctx, domainEvents...); err != nil {
		p.logger.WarnContext(ctx, "event publish failed",
			slog.Int("event_count", len(domainEvents)),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
