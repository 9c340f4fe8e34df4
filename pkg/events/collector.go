package events

// EventCollector accumulates the domain events an aggregate raises during one
// state transition. Aggregates embed it; the application layer drains it once
// the transition has committed.
type EventCollector struct {
	pending []DomainEvent
}

// Record queues one or more domain events for publication.
func (c *EventCollector) Record(evts ...DomainEvent) {
	c.pending = append(c.pending, evts...)
}

// Events returns the queued events without draining them.
func (c *EventCollector) Events() []DomainEvent {
	return c.pending
}

// ClearEvents drains the queue and returns what it held. Draining makes
// publication idempotent: a second drain publishes nothing.
func (c *EventCollector) ClearEvents() []DomainEvent {
	drained := c.pending
	c.pending = nil
	return drained
}
