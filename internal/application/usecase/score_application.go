package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/internal/domain/service"
	"github.com/harborbank/scoring-service/internal/domain/valueobject"
	"github.com/harborbank/scoring-service/pkg/numeric"
)

// debugFeatureCount bounds the feature slice echoed in debug responses.
const debugFeatureCount = 30

// ScoreApplicationUseCase orchestrates the business-level scoring flow:
// sanitize the wizard payload, run the decision engine, publish the scoring
// event, shape the response.
type ScoreApplicationUseCase struct {
	engine           *service.DecisionEngine
	publisher        port.EventPublisher
	defaultThreshold float64
}

// NewScoreApplicationUseCase wires dependencies.
func NewScoreApplicationUseCase(
	engine *service.DecisionEngine,
	publisher port.EventPublisher,
	defaultThreshold float64,
) *ScoreApplicationUseCase {
	return &ScoreApplicationUseCase{
		engine:           engine,
		publisher:        publisher,
		defaultThreshold: defaultThreshold,
	}
}

// Execute scores one application.
func (uc *ScoreApplicationUseCase) Execute(
	ctx context.Context,
	req dto.ScoreApplicationRequest,
) (dto.ScoreApplicationResponse, error) {
	threshold, err := parseThreshold(req.Threshold, uc.defaultThreshold)
	if err != nil {
		return dto.ScoreApplicationResponse{}, err
	}

	// 1. Sanitize the payload into the domain record.
	app := toApplication(req)
	controls := toControls(req, threshold)

	// 2. Run the decision pipeline.
	assessment, err := uc.engine.Evaluate(ctx, app, controls)
	if err != nil {
		return dto.ScoreApplicationResponse{}, err
	}

	// 3. Publish domain events.
	if err := uc.publisher.Publish(ctx, assessment.ClearEvents()...); err != nil {
		return dto.ScoreApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScoreResponse(assessment), nil
}

func toApplication(req dto.ScoreApplicationRequest) model.CreditApplication {
	return model.NewCreditApplication(
		numeric.Float(req.Age, 0),
		valueobject.EmploymentStatusFromString(asString(req.StatutPro)),
		numeric.Float(req.AnciennetePro, 0),
		numeric.Float(req.RevenuMensuel, 0),
		numeric.Float(req.ChargesMensuelles, 0),
		numeric.Float(req.CreditsEnCours, 0),
		numeric.Float(req.AnneesResidence, 0),
		numeric.Float(req.MontantCredit, 0),
		numeric.Int(req.DureeCredit, 0),
		valueobject.CreditPurposeFromString(asString(req.ObjetCredit)),
		numeric.Float(req.TauxAnnuel, model.DefaultAnnualRate),
	)
}

func toControls(req dto.ScoreApplicationRequest, threshold float64) model.DecisionControls {
	return model.DecisionControls{
		Threshold:         threshold,
		AgentAdjustment:   numeric.Float(req.AgentAdjustment, 0),
		AgentComment:      strings.TrimSpace(req.AgentComment),
		UseGuardrails:     numeric.Bool(req.UseGuardrails, false),
		MaxDebtRatioAfter: numeric.Float(req.MaxDebtRatioAfter, model.DefaultMaxDebtRatioAfter),
		MinResidualAfter:  numeric.Float(req.MinResteAVivreAfter, model.DefaultMinResidualAfter),
		Debug:             numeric.Bool(req.Debug, false),
	}
}

func toScoreResponse(a *model.CreditAssessment) dto.ScoreApplicationResponse {
	app := a.Application()
	outcome := a.Outcome()
	controls := a.Controls()

	reason := service.ReasonAccepted
	if !outcome.Decision.IsAccepted() {
		reason = a.PrimaryReason()
	}

	resp := dto.ScoreApplicationResponse{
		Decision:          outcome.Decision.Int(),
		Reason:            reason,
		Reasons:           outcome.Reasons,
		RiskScoreModel:    roundTo(outcome.RiskScoreModel, 4),
		RiskScoreAdjusted: roundTo(outcome.RiskScoreAdjusted, 4),
		Threshold:         controls.Threshold,
		AgentAdjustment:   outcome.EffectiveAdjustment,
		AgentComment:      controls.AgentComment,
		Credit: dto.CreditTermsResponse{
			Montant:    app.Principal(),
			DureeMois:  app.TermMonths(),
			Objet:      app.Purpose().String(),
			TauxAnnuel: app.AnnualRate(),
			Mensualite: roundTo(outcome.Installment, 2),
		},
		KPIs: toKPIResponse(outcome.KPIs),
	}

	if outcome.Guardrails != nil {
		resp.Guardrails = &dto.GuardrailResponse{
			MaxDebtRatioAfter:   outcome.Guardrails.MaxDebtRatioAfter,
			MinResteAVivreAfter: outcome.Guardrails.MinResidualAfter,
			ForcedRefusal:       outcome.Guardrails.ForcedRefusal,
			Reasons:             outcome.Guardrails.Reasons,
		}
	}
	if len(outcome.Features) > 0 {
		head := outcome.Features
		if len(head) > debugFeatureCount {
			head = head[:debugFeatureCount]
		}
		resp.Debug = &dto.DebugResponse{Features: head}
	}
	return resp
}

func toKPIResponse(kpis model.KPISet) dto.KPIResponse {
	return dto.KPIResponse{
		TauxEndettementBefore: roundTo(kpis.DebtRatioBefore, 4),
		TauxEndettementAfter:  roundTo(kpis.DebtRatioAfter, 4),
		ResteAVivreBefore:     roundTo(kpis.ResidualBefore, 2),
		ResteAVivreAfter:      roundTo(kpis.ResidualAfter, 2),
	}
}

// asString renders a free-form JSON value the way the form would have sent
// it, so a numeric label still validates as a non-empty purpose.
func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
