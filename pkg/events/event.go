// Package events defines the domain-event contract shared by aggregates and
// message publishers.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event the domain raises. Publishers
// serialize events by JSON-marshalling the concrete value, so implementations
// carry their own exported, tagged fields rather than relying on these
// accessors for the payload.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
}
