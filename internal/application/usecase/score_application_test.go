package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/application/usecase"
	"github.com/harborbank/scoring-service/internal/domain/event"
	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/port"
	"github.com/harborbank/scoring-service/internal/domain/service"
	"github.com/harborbank/scoring-service/pkg/events"
)

// --- Mock implementations ---

type mockModelClient struct {
	predictFunc func(ctx context.Context, features []float64) (float64, error)
	info        port.ModelInfo
	calls       int
}

func (m *mockModelClient) PredictProba(ctx context.Context, features []float64) (float64, error) {
	m.calls++
	if m.predictFunc != nil {
		return m.predictFunc(ctx, features)
	}
	return 0.5, nil
}

func (m *mockModelClient) Info() port.ModelInfo {
	if m.info.ModelType != "" {
		return m.info
	}
	return port.ModelInfo{ModelType: "logistic_regression", NumFeatures: service.FeatureVectorWidth}
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func fixedScore(score float64) func(context.Context, []float64) (float64, error) {
	return func(_ context.Context, _ []float64) (float64, error) {
		return score, nil
	}
}

func newScoreUseCase(client *mockModelClient, publisher *mockEventPublisher) *usecase.ScoreApplicationUseCase {
	engine := service.NewDecisionEngine(service.NewFeatureBuilder(), client)
	return usecase.NewScoreApplicationUseCase(engine, publisher, 0.5)
}

// --- Tests ---

// validScoreRequest mimics the wizard payload: values arrive as whatever the
// form fields held, numbers and numeric strings mixed.
func validScoreRequest() dto.ScoreApplicationRequest {
	return dto.ScoreApplicationRequest{
		Age:               "35",
		StatutPro:         "CDI",
		AnciennetePro:     60,
		RevenuMensuel:     "4000",
		ChargesMensuelles: 800.0,
		CreditsEnCours:    0,
		AnneesResidence:   5,
		MontantCredit:     10000,
		DureeCredit:       "48",
		ObjetCredit:       "Véhicule",
		TauxAnnuel:        0.035,
	}
}

func TestScoreApplication_Execute(t *testing.T) {
	t.Run("scores and accepts a healthy application", func(t *testing.T) {
		client := &mockModelClient{predictFunc: fixedScore(0.2)}
		publisher := &mockEventPublisher{}
		uc := newScoreUseCase(client, publisher)

		resp, err := uc.Execute(context.Background(), validScoreRequest())
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Decision)
		assert.Equal(t, service.ReasonAccepted, resp.Reason)
		assert.Empty(t, resp.Reasons)
		assert.Equal(t, 0.2, resp.RiskScoreModel)
		assert.Equal(t, 0.2, resp.RiskScoreAdjusted)
		assert.Equal(t, 0.5, resp.Threshold)

		assert.Equal(t, 10000.0, resp.Credit.Montant)
		assert.Equal(t, 48, resp.Credit.DureeMois)
		assert.Equal(t, "Véhicule", resp.Credit.Objet)
		assert.Equal(t, 0.035, resp.Credit.TauxAnnuel)
		assert.InDelta(t, 223.56, resp.Credit.Mensualite, 0.2)

		assert.InDelta(t, 0.2, resp.KPIs.TauxEndettementBefore, 1e-9)
		assert.InDelta(t, 0.2559, resp.KPIs.TauxEndettementAfter, 0.0002)
		assert.InDelta(t, 3200, resp.KPIs.ResteAVivreBefore, 1e-9)
		assert.InDelta(t, 2976.44, resp.KPIs.ResteAVivreAfter, 0.5)

		assert.Nil(t, resp.Guardrails)
		assert.Nil(t, resp.Debug)

		require.Len(t, publisher.publishedEvents, 1)
		scored, ok := publisher.publishedEvents[0].(event.ApplicationScored)
		require.True(t, ok)
		assert.Equal(t, event.EventTypeApplicationScored, scored.EventType())
		assert.Equal(t, 1, scored.Decision)
		assert.Equal(t, 0.2, scored.RiskScoreModel)
	})

	t.Run("fast-rejects a zero income application", func(t *testing.T) {
		client := &mockModelClient{predictFunc: fixedScore(0.1)}
		publisher := &mockEventPublisher{}
		uc := newScoreUseCase(client, publisher)

		req := validScoreRequest()
		req.RevenuMensuel = "0"
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Decision)
		assert.Equal(t, service.ReasonNoIncome, resp.Reason)
		assert.Equal(t, 1.0, resp.RiskScoreModel)
		assert.Equal(t, 1.0, resp.RiskScoreAdjusted)
		assert.Equal(t, 0, client.calls)
		// A business refusal is still a scored application.
		require.Len(t, publisher.publishedEvents, 1)
	})

	t.Run("rejects malformed credit fields before scoring", func(t *testing.T) {
		client := &mockModelClient{}
		publisher := &mockEventPublisher{}
		uc := newScoreUseCase(client, publisher)

		req := validScoreRequest()
		req.MontantCredit = 0
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "montant_credit")
		assert.Equal(t, 0, client.calls)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("clamps the agent adjustment", func(t *testing.T) {
		client := &mockModelClient{predictFunc: fixedScore(0.4)}
		uc := newScoreUseCase(client, &mockEventPublisher{})

		req := validScoreRequest()
		req.AgentAdjustment = 5.0
		req.AgentComment = "dossier suivi en agence"
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 0.3, resp.AgentAdjustment)
		assert.InDelta(t, 0.7, resp.RiskScoreAdjusted, 1e-9)
		assert.Equal(t, "dossier suivi en agence", resp.AgentComment)
	})

	t.Run("validates the threshold", func(t *testing.T) {
		uc := newScoreUseCase(&mockModelClient{}, &mockEventPublisher{})

		req := validScoreRequest()
		req.Threshold = 1.5
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold doit être compris entre 0 et 1")

		req.Threshold = "abc"
		_, err = uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold doit être un nombre")
	})

	t.Run("applies guardrails and reports the override", func(t *testing.T) {
		client := &mockModelClient{predictFunc: fixedScore(0.2)}
		uc := newScoreUseCase(client, &mockEventPublisher{})

		req := validScoreRequest()
		req.UseGuardrails = true
		req.MaxDebtRatioAfter = 0.10
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Decision)
		require.NotNil(t, resp.Guardrails)
		assert.True(t, resp.Guardrails.ForcedRefusal)
		assert.Equal(t, 0.10, resp.Guardrails.MaxDebtRatioAfter)
		require.NotEmpty(t, resp.Guardrails.Reasons)
		assert.Contains(t, resp.Reason, "Garde-fou")
	})

	t.Run("echoes the feature head in debug mode", func(t *testing.T) {
		uc := newScoreUseCase(&mockModelClient{}, &mockEventPublisher{})

		req := validScoreRequest()
		req.Debug = true
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		require.NotNil(t, resp.Debug)
		assert.Len(t, resp.Debug.Features, 30)
		assert.Equal(t, 35.0, resp.Debug.Features[0]) // age slot
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		client := &mockModelClient{predictFunc: fixedScore(0.37)}
		uc := newScoreUseCase(client, &mockEventPublisher{})

		first, err := uc.Execute(context.Background(), validScoreRequest())
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), validScoreRequest())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...events.DomainEvent) error {
				return fmt.Errorf("broker unavailable")
			},
		}
		uc := newScoreUseCase(&mockModelClient{}, publisher)

		_, err := uc.Execute(context.Background(), validScoreRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
