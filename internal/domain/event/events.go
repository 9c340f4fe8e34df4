package event

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeApplicationScored is emitted every time an application completes
// the scoring pipeline, whatever the verdict.
const EventTypeApplicationScored = "scoring.application.scored"

// ApplicationScored is published after an application has been evaluated. It
// carries the decision and the figures an analyst needs to audit it; the
// applicant's raw record is deliberately not included.
type ApplicationScored struct {
	ID                uuid.UUID `json:"event_id"`
	AssessmentID      uuid.UUID `json:"assessment_id"`
	Decision          int       `json:"decision"`
	RiskScoreModel    float64   `json:"risk_score_model"`
	RiskScoreAdjusted float64   `json:"risk_score_adjusted"`
	DebtRatioAfter    float64   `json:"taux_endettement_after"`
	ResidualAfter     float64   `json:"reste_a_vivre_after"`
	ForcedRefusal     bool      `json:"forced_refusal"`
	Reasons           []string  `json:"reasons,omitempty"`
	ScoredAt          time.Time `json:"scored_at"`
}

// EventID returns the unique identifier for this event.
func (e ApplicationScored) EventID() uuid.UUID { return e.ID }

// EventType returns the event type identifier.
func (e ApplicationScored) EventType() string { return EventTypeApplicationScored }

// AggregateID returns the assessment ID as the aggregate identifier.
func (e ApplicationScored) AggregateID() uuid.UUID { return e.AssessmentID }

// AggregateType returns the aggregate type name.
func (e ApplicationScored) AggregateType() string { return "CreditAssessment" }

// OccurredAt returns when the scoring completed.
func (e ApplicationScored) OccurredAt() time.Time { return e.ScoredAt }
