package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubEvent struct {
	id  uuid.UUID
	agg uuid.UUID
	at  time.Time
}

func (e stubEvent) EventID() uuid.UUID     { return e.id }
func (e stubEvent) EventType() string      { return "test.event" }
func (e stubEvent) AggregateID() uuid.UUID { return e.agg }
func (e stubEvent) AggregateType() string  { return "Test" }
func (e stubEvent) OccurredAt() time.Time  { return e.at }

func TestEventCollectorRecordAndClear(t *testing.T) {
	var c EventCollector

	assert.Empty(t, c.Events())

	first := stubEvent{id: uuid.New(), agg: uuid.New(), at: time.Now().UTC()}
	second := stubEvent{id: uuid.New(), agg: first.agg, at: time.Now().UTC()}
	c.Record(first)
	c.Record(second)

	got := c.Events()
	assert.Len(t, got, 2)
	assert.Equal(t, first.EventID(), got[0].EventID())

	cleared := c.ClearEvents()
	assert.Len(t, cleared, 2)
	assert.Empty(t, c.Events())
	assert.Nil(t, c.ClearEvents())
}
