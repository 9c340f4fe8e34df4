package service

import (
	"context"
	"fmt"
	"time"

	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/internal/domain/valueobject"
	"github.com/harborbank/scoring-service/pkg/numeric"
)

// Acceptance rule thresholds. The rule is deliberately literal: an
// application is accepted when both hold, whatever the model says. The model
// score rides along for transparency and downstream analytics but does not
// decide.
const (
	MinResidualForAcceptance  = 800.0
	MaxDebtRatioForAcceptance = 0.35
)

// Decision reasons surfaced to advisers and applicants.
const (
	ReasonNoIncome         = "Revenu mensuel nul ou inexistant."
	ReasonAccepted         = "Votre dossier est compatible avec nos critères."
	ReasonDebtRatioTooHigh = "Taux d’endettement après crédit trop élevé (> 35%)."
	ReasonResidualTooLow   = "Reste à vivre après crédit insuffisant (< 800 €)."
)

// ---------------------------------------------------------------------------
// DecisionEngine
// ---------------------------------------------------------------------------

// DecisionEngine runs the scoring sequence for one application. It owns the
// ordering: the no-income fast reject fires before credit validation,
// validation before any computation, the acceptance rule after the model,
// guardrails last.
type DecisionEngine struct {
	features *FeatureBuilder
	model    port.ModelClient
}

// NewDecisionEngine creates a DecisionEngine with its dependencies.
func NewDecisionEngine(features *FeatureBuilder, model port.ModelClient) *DecisionEngine {
	return &DecisionEngine{
		features: features,
		model:    model,
	}
}

// Evaluate scores one application under the given request controls and
// returns the resulting assessment. A *model.ValidationError return means the
// request was malformed; any other error is an internal scoring failure.
func (e *DecisionEngine) Evaluate(
	ctx context.Context,
	app model.CreditApplication,
	controls model.DecisionControls,
) (*model.CreditAssessment, error) {
	adjustment := numeric.Clamp(controls.AgentAdjustment, model.AgentAdjustmentMin, model.AgentAdjustmentMax)

	// No declared income refuses the application before the credit fields are
	// even validated. Both scores pin to maximum risk and the model is never
	// consulted.
	if !app.HasIncome() {
		outcome := model.AssessmentOutcome{
			RiskScoreModel:      1.0,
			RiskScoreAdjusted:   1.0,
			EffectiveAdjustment: adjustment,
			Decision:            valueobject.DecisionRefuse,
			Reasons:             []string{ReasonNoIncome},
			ModelBypassed:       true,
		}
		return model.NewCreditAssessment(app, controls, outcome, time.Now()), nil
	}

	if verr := app.ValidateCredit(); verr != nil {
		return nil, verr
	}

	installment := model.MonthlyInstallment(app.Principal(), app.TermMonths(), app.AnnualRate())
	kpis := model.ComputeKPIs(app.MonthlyIncome(), app.MonthlyCharges(), app.ExistingLoans(), installment)

	features, err := e.features.Build(app, installment, kpis)
	if err != nil {
		return nil, err
	}

	modelScore, err := e.model.PredictProba(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("score application: %w", err)
	}
	adjusted := numeric.Clamp(modelScore+adjustment, 0, 1)

	var reasons []string
	if kpis.DebtRatioAfter > MaxDebtRatioForAcceptance {
		reasons = append(reasons, ReasonDebtRatioTooHigh)
	}
	if kpis.ResidualAfter < MinResidualForAcceptance {
		reasons = append(reasons, ReasonResidualTooLow)
	}
	accepted := len(reasons) == 0

	var guardrails *model.GuardrailReport
	if controls.UseGuardrails {
		guardrails = evaluateGuardrails(kpis, controls)
		if guardrails.ForcedRefusal {
			accepted = false
			reasons = append(reasons, guardrails.Reasons...)
		}
	}

	outcome := model.AssessmentOutcome{
		Installment:         installment,
		KPIs:                kpis,
		RiskScoreModel:      modelScore,
		RiskScoreAdjusted:   adjusted,
		EffectiveAdjustment: adjustment,
		Decision:            valueobject.DecisionFromBool(accepted),
		Reasons:             reasons,
		Guardrails:          guardrails,
	}
	if controls.Debug {
		outcome.Features = features
	}
	return model.NewCreditAssessment(app, controls, outcome, time.Now()), nil
}

// evaluateGuardrails checks the adviser-configured hard limits. Each violated
// limit contributes one reason; any violation forces a refusal regardless of
// the acceptance rule's verdict.
func evaluateGuardrails(kpis model.KPISet, controls model.DecisionControls) *model.GuardrailReport {
	report := &model.GuardrailReport{
		MaxDebtRatioAfter: controls.MaxDebtRatioAfter,
		MinResidualAfter:  controls.MinResidualAfter,
	}

	if kpis.DebtRatioAfter > controls.MaxDebtRatioAfter {
		report.Reasons = append(report.Reasons, fmt.Sprintf(
			"Garde-fou : taux d’endettement après crédit %.1f%% > limite %.1f%%.",
			kpis.DebtRatioAfter*100, controls.MaxDebtRatioAfter*100,
		))
	}
	if kpis.ResidualAfter < controls.MinResidualAfter {
		report.Reasons = append(report.Reasons, fmt.Sprintf(
			"Garde-fou : reste à vivre après crédit %.0f € < minimum %.0f €.",
			kpis.ResidualAfter, controls.MinResidualAfter,
		))
	}
	report.ForcedRefusal = len(report.Reasons) > 0
	return report
}
