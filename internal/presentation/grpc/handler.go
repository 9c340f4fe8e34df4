package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/harborbank/scoring-service/internal/application/dto"
	"github.com/harborbank/scoring-service/internal/application/usecase"
	"github.com/harborbank/scoring-service/internal/domain/model"
)

// Compile-time assertion that ScoringHandler implements ScoringServiceServer.
var _ ScoringServiceServer = (*ScoringHandler)(nil)

// ScoringHandler implements the gRPC ScoringServiceServer interface.
type ScoringHandler struct {
	UnimplementedScoringServiceServer
	scoreApplication *usecase.ScoreApplicationUseCase
	scoreVector      *usecase.ScoreFeatureVectorUseCase
	modelInfo        *usecase.GetModelInfoUseCase
	logger           *slog.Logger
}

// NewScoringHandler creates a new gRPC handler.
func NewScoringHandler(
	scoreApplication *usecase.ScoreApplicationUseCase,
	scoreVector *usecase.ScoreFeatureVectorUseCase,
	modelInfo *usecase.GetModelInfoUseCase,
	logger *slog.Logger,
) *ScoringHandler {
	return &ScoringHandler{
		scoreApplication: scoreApplication,
		scoreVector:      scoreVector,
		modelInfo:        modelInfo,
		logger:           logger,
	}
}

// Proto-aligned request/response message types.

// ScoreApplicationRequest represents the proto ScoreApplicationRequest message.
// Zero-valued optional fields (threshold, taux_annuel, guardrail limits) fall
// back to the service defaults, per proto3 semantics.
type ScoreApplicationRequest struct {
	Age               float64 `json:"age"`
	StatutPro         string  `json:"statut_pro"`
	AnciennetePro     float64 `json:"anciennete_pro"`
	RevenuMensuel     float64 `json:"revenu_mensuel"`
	ChargesMensuelles float64 `json:"charges_mensuelles"`
	CreditsEnCours    float64 `json:"credits_encours"`
	AnneesResidence   float64 `json:"annees_residence"`

	MontantCredit float64 `json:"montant_credit"`
	DureeCredit   int32   `json:"duree_credit"`
	ObjetCredit   string  `json:"objet_credit"`
	TauxAnnuel    float64 `json:"taux_annuel"`

	Threshold           float64 `json:"threshold"`
	AgentAdjustment     float64 `json:"agent_adjustment"`
	AgentComment        string  `json:"agent_comment"`
	UseGuardrails       bool    `json:"use_guardrails"`
	MaxDebtRatioAfter   float64 `json:"max_debt_ratio_after"`
	MinResteAVivreAfter float64 `json:"min_reste_a_vivre_after"`
	Debug               bool    `json:"debug"`
}

// CreditTermsMsg represents the proto CreditTerms message.
type CreditTermsMsg struct {
	Montant    float64 `json:"montant"`
	DureeMois  int32   `json:"duree_mois"`
	Objet      string  `json:"objet"`
	TauxAnnuel float64 `json:"taux_annuel"`
	Mensualite float64 `json:"mensualite"`
}

// KPIMsg represents the proto AffordabilityKPIs message.
type KPIMsg struct {
	TauxEndettementBefore float64 `json:"taux_endettement_before"`
	TauxEndettementAfter  float64 `json:"taux_endettement_after"`
	ResteAVivreBefore     float64 `json:"reste_a_vivre_before"`
	ResteAVivreAfter      float64 `json:"reste_a_vivre_after"`
}

// GuardrailMsg represents the proto GuardrailReport message.
type GuardrailMsg struct {
	MaxDebtRatioAfter   float64  `json:"max_debt_ratio_after"`
	MinResteAVivreAfter float64  `json:"min_reste_a_vivre_after"`
	ForcedRefusal       bool     `json:"forced_refusal"`
	Reasons             []string `json:"reasons"`
}

// ScoreApplicationResponse represents the proto ScoreApplicationResponse message.
type ScoreApplicationResponse struct {
	Decision          int32           `json:"decision"`
	Reason            string          `json:"reason"`
	Reasons           []string        `json:"reasons"`
	RiskScoreModel    float64         `json:"risk_score_model"`
	RiskScoreAdjusted float64         `json:"risk_score_adjusted"`
	Threshold         float64         `json:"threshold"`
	AgentAdjustment   float64         `json:"agent_adjustment"`
	AgentComment      string          `json:"agent_comment"`
	Credit            *CreditTermsMsg `json:"credit"`
	KPIs              *KPIMsg         `json:"kpis"`
	Guardrails        *GuardrailMsg   `json:"guardrails"`
	DebugFeatures     []float64       `json:"debug_features"`
}

// PredictVectorRequest represents the proto PredictVectorRequest message.
type PredictVectorRequest struct {
	Features  []float64 `json:"features"`
	Threshold float64   `json:"threshold"`
}

// PredictVectorResponse represents the proto PredictVectorResponse message.
type PredictVectorResponse struct {
	ProbaTarget1 float64 `json:"proba_target_1"`
	Decision     int32   `json:"decision"`
	Threshold    float64 `json:"threshold"`
	ModelType    string  `json:"model_type"`
}

// GetModelInfoRequest represents the proto GetModelInfoRequest message.
type GetModelInfoRequest struct{}

// GuardrailDefaultsMsg represents the proto GuardrailDefaults message.
type GuardrailDefaultsMsg struct {
	MaxDebtRatioAfter   float64 `json:"max_debt_ratio_after"`
	MinResteAVivreAfter float64 `json:"min_reste_a_vivre_after"`
}

// GetModelInfoResponse represents the proto GetModelInfoResponse message.
type GetModelInfoResponse struct {
	ModelType          string                `json:"model_type"`
	NumFeatures        int32                 `json:"n_features"`
	FeatureNames       []string              `json:"feature_names"`
	FeatureLayout      string                `json:"feature_layout"`
	UsesScaler         bool                  `json:"uses_scaler"`
	ThresholdDefault   float64               `json:"threshold_default"`
	AgentAdjustmentMin float64               `json:"agent_adjustment_min"`
	AgentAdjustmentMax float64               `json:"agent_adjustment_max"`
	GuardrailDefaults  *GuardrailDefaultsMsg `json:"guardrails_default"`
	DefaultAnnualRate  float64               `json:"default_annual_rate"`
}

// ScoreApplication scores one business application.
func (h *ScoringHandler) ScoreApplication(ctx context.Context, req *ScoreApplicationRequest) (*ScoreApplicationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.scoreApplication.Execute(ctx, dto.ScoreApplicationRequest{
		Age:               req.Age,
		StatutPro:         req.StatutPro,
		AnciennetePro:     req.AnciennetePro,
		RevenuMensuel:     req.RevenuMensuel,
		ChargesMensuelles: req.ChargesMensuelles,
		CreditsEnCours:    req.CreditsEnCours,
		AnneesResidence:   req.AnneesResidence,

		MontantCredit: req.MontantCredit,
		DureeCredit:   req.DureeCredit,
		ObjetCredit:   req.ObjetCredit,
		TauxAnnuel:    optionalFloat(req.TauxAnnuel),

		Threshold:           optionalFloat(req.Threshold),
		AgentAdjustment:     req.AgentAdjustment,
		AgentComment:        req.AgentComment,
		UseGuardrails:       req.UseGuardrails,
		MaxDebtRatioAfter:   optionalFloat(req.MaxDebtRatioAfter),
		MinResteAVivreAfter: optionalFloat(req.MinResteAVivreAfter),
		Debug:               req.Debug,
	})
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	resp := &ScoreApplicationResponse{
		Decision:          int32(result.Decision),
		Reason:            result.Reason,
		Reasons:           result.Reasons,
		RiskScoreModel:    result.RiskScoreModel,
		RiskScoreAdjusted: result.RiskScoreAdjusted,
		Threshold:         result.Threshold,
		AgentAdjustment:   result.AgentAdjustment,
		AgentComment:      result.AgentComment,
		Credit: &CreditTermsMsg{
			Montant:    result.Credit.Montant,
			DureeMois:  int32(result.Credit.DureeMois),
			Objet:      result.Credit.Objet,
			TauxAnnuel: result.Credit.TauxAnnuel,
			Mensualite: result.Credit.Mensualite,
		},
		KPIs: &KPIMsg{
			TauxEndettementBefore: result.KPIs.TauxEndettementBefore,
			TauxEndettementAfter:  result.KPIs.TauxEndettementAfter,
			ResteAVivreBefore:     result.KPIs.ResteAVivreBefore,
			ResteAVivreAfter:      result.KPIs.ResteAVivreAfter,
		},
	}
	if result.Guardrails != nil {
		resp.Guardrails = &GuardrailMsg{
			MaxDebtRatioAfter:   result.Guardrails.MaxDebtRatioAfter,
			MinResteAVivreAfter: result.Guardrails.MinResteAVivreAfter,
			ForcedRefusal:       result.Guardrails.ForcedRefusal,
			Reasons:             result.Guardrails.Reasons,
		}
	}
	if result.Debug != nil {
		resp.DebugFeatures = result.Debug.Features
	}
	return resp, nil
}

// PredictVector scores one pre-computed feature vector.
func (h *ScoringHandler) PredictVector(ctx context.Context, req *PredictVectorRequest) (*PredictVectorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	features := make([]interface{}, len(req.Features))
	for i, f := range req.Features {
		features[i] = f
	}
	payload := map[string]interface{}{"features": features}
	if req.Threshold != 0 {
		payload["threshold"] = req.Threshold
	}

	result, err := h.scoreVector.Execute(ctx, dto.RawPredictRequest{Payload: payload})
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	return &PredictVectorResponse{
		ProbaTarget1: result.ProbaTarget1,
		Decision:     int32(result.Decision),
		Threshold:    result.Threshold,
		ModelType:    result.ModelType,
	}, nil
}

// GetModelInfo returns the static model descriptor.
func (h *ScoringHandler) GetModelInfo(ctx context.Context, req *GetModelInfoRequest) (*GetModelInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	info := h.modelInfo.Execute(ctx)
	return &GetModelInfoResponse{
		ModelType:          info.ModelType,
		NumFeatures:        int32(info.NumFeatures),
		FeatureNames:       info.FeatureNames,
		FeatureLayout:      info.FeatureLayout,
		UsesScaler:         info.UsesScaler,
		ThresholdDefault:   info.ThresholdDefault,
		AgentAdjustmentMin: info.AgentAdjustmentMin,
		AgentAdjustmentMax: info.AgentAdjustmentMax,
		GuardrailDefaults: &GuardrailDefaultsMsg{
			MaxDebtRatioAfter:   info.GuardrailDefaults.MaxDebtRatioAfter,
			MinResteAVivreAfter: info.GuardrailDefaults.MinResteAVivreAfter,
		},
		DefaultAnnualRate: info.DefaultAnnualRate,
	}, nil
}

// mapError translates application errors into gRPC status codes. Validation
// problems carry their message; anything else is an opaque internal error.
func (h *ScoringHandler) mapError(ctx context.Context, err error) error {
	var validationErr *model.ValidationError
	var missingErr *usecase.MissingFeaturesError
	var invalidErr *usecase.InvalidFeatureValuesError

	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.As(err, &missingErr):
		return status.Error(codes.InvalidArgument, missingErr.Error())
	case errors.As(err, &invalidErr):
		return status.Error(codes.InvalidArgument, invalidErr.Error())
	default:
		h.logger.ErrorContext(ctx, "scoring request failed", slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}

// optionalFloat maps a proto3 zero value to an absent field.
func optionalFloat(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
