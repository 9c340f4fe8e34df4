package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/harborbank/scoring-service/internal/domain/event"
	"github.com/harborbank/scoring-service/internal/domain/valueobject"
	"github.com/harborbank/scoring-service/pkg/events"
)

// ---------------------------------------------------------------------------
// CreditAssessment aggregate root
// ---------------------------------------------------------------------------

// GuardrailReport captures the outcome of the opt-in hard limits. Present on
// an assessment only when the request enabled guardrails.
type GuardrailReport struct {
	MaxDebtRatioAfter float64
	MinResidualAfter  float64
	ForcedRefusal     bool
	Reasons           []string
}

// AssessmentOutcome is everything the decision engine derives for one request.
// The aggregate constructor snapshots it.
type AssessmentOutcome struct {
	Installment         float64
	KPIs                KPISet
	RiskScoreModel      float64
	RiskScoreAdjusted   float64
	EffectiveAdjustment float64
	Decision            valueobject.Decision
	Reasons             []string
	Guardrails          *GuardrailReport
	Features            []float64
	ModelBypassed       bool
}

// CreditAssessment is the transient aggregate produced by scoring one
// application. It lives for the duration of a request; nothing is persisted,
// but it emits an ApplicationScored domain event for downstream consumers.
type CreditAssessment struct {
	events.EventCollector

	id          uuid.UUID
	application CreditApplication
	controls    DecisionControls
	outcome     AssessmentOutcome
	scoredAt    time.Time
}

// NewCreditAssessment snapshots a completed evaluation and records the
// scoring event.
func NewCreditAssessment(
	app CreditApplication,
	controls DecisionControls,
	outcome AssessmentOutcome,
	now time.Time,
) *CreditAssessment {
	a := &CreditAssessment{
		id:          uuid.New(),
		application: app,
		controls:    controls,
		outcome:     outcome,
		scoredAt:    now,
	}

	forced := outcome.Guardrails != nil && outcome.Guardrails.ForcedRefusal
	a.Record(event.ApplicationScored{
		ID:                uuid.New(),
		AssessmentID:      a.id,
		Decision:          outcome.Decision.Int(),
		RiskScoreModel:    outcome.RiskScoreModel,
		RiskScoreAdjusted: outcome.RiskScoreAdjusted,
		DebtRatioAfter:    outcome.KPIs.DebtRatioAfter,
		ResidualAfter:     outcome.KPIs.ResidualAfter,
		ForcedRefusal:     forced,
		Reasons:           outcome.Reasons,
		ScoredAt:          now,
	})
	return a
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// ID returns the assessment identifier.
func (a *CreditAssessment) ID() uuid.UUID { return a.id }

// Application returns the sanitized record the assessment was computed from.
func (a *CreditAssessment) Application() CreditApplication { return a.application }

// Controls returns the per-request decision controls.
func (a *CreditAssessment) Controls() DecisionControls { return a.controls }

// Outcome returns the derived scores, KPIs, decision, and reasons.
func (a *CreditAssessment) Outcome() AssessmentOutcome { return a.outcome }

// ScoredAt returns when the assessment completed.
func (a *CreditAssessment) ScoredAt() time.Time { return a.scoredAt }

// Decision returns the final verdict.
func (a *CreditAssessment) Decision() valueobject.Decision { return a.outcome.Decision }

// PrimaryReason returns the first reason, or the empty string when none was
// recorded.
func (a *CreditAssessment) PrimaryReason() string {
	if len(a.outcome.Reasons) == 0 {
		return ""
	}
	return a.outcome.Reasons[0]
}
