package dto

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ScoreApplicationRequest is the business-level scoring payload sent by the
// wizard form. Most fields are deliberately untyped: the form forwards
// whatever the applicant typed and the sanitizer owns the conversion, so a
// "3 500" salary or a "oui" checkbox must not fail JSON decoding.
type ScoreApplicationRequest struct {
	Age               interface{} `json:"age"`
	StatutPro         interface{} `json:"statut_pro"`
	AnciennetePro     interface{} `json:"anciennete_pro"`
	RevenuMensuel     interface{} `json:"revenu_mensuel"`
	ChargesMensuelles interface{} `json:"charges_mensuelles"`
	CreditsEnCours    interface{} `json:"credits_encours"`
	AnneesResidence   interface{} `json:"annees_residence"`

	MontantCredit interface{} `json:"montant_credit"`
	DureeCredit   interface{} `json:"duree_credit"`
	ObjetCredit   interface{} `json:"objet_credit"`
	TauxAnnuel    interface{} `json:"taux_annuel"`

	Threshold           interface{} `json:"threshold"`
	AgentAdjustment     interface{} `json:"agent_adjustment"`
	AgentComment        string      `json:"agent_comment"`
	UseGuardrails       interface{} `json:"use_guardrails"`
	MaxDebtRatioAfter   interface{} `json:"max_debt_ratio_after"`
	MinResteAVivreAfter interface{} `json:"min_reste_a_vivre_after"`
	Debug               interface{} `json:"debug"`
}

// RawPredictRequest wraps the legacy scoring payload: either var_0..var_199
// keys at the top level or the same keys nested under "features", plus an
// optional threshold. It stays a map because the keys are dynamic.
type RawPredictRequest struct {
	Payload map[string]interface{}
}

// RawBatchRequest wraps the legacy batch payload: {"rows": [...], "threshold": x}.
type RawBatchRequest struct {
	Payload map[string]interface{}
}

// SimulateCreditRequest asks for the cost of a credit without scoring it.
// Income and charges are optional; when the income is present the response
// includes affordability KPIs.
type SimulateCreditRequest struct {
	MontantCredit     interface{} `json:"montant_credit"`
	DureeCredit       interface{} `json:"duree_credit"`
	TauxAnnuel        interface{} `json:"taux_annuel"`
	RevenuMensuel     interface{} `json:"revenu_mensuel"`
	ChargesMensuelles interface{} `json:"charges_mensuelles"`
	CreditsEnCours    interface{} `json:"credits_encours"`
	WithSchedule      interface{} `json:"with_schedule"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CreditTermsResponse echoes the requested credit terms with the computed
// installment.
type CreditTermsResponse struct {
	Montant    float64 `json:"montant"`
	DureeMois  int     `json:"duree_mois"`
	Objet      string  `json:"objet"`
	TauxAnnuel float64 `json:"taux_annuel"`
	Mensualite float64 `json:"mensualite"`
}

// KPIResponse carries the four affordability indicators around the requested
// credit.
type KPIResponse struct {
	TauxEndettementBefore float64 `json:"taux_endettement_before"`
	TauxEndettementAfter  float64 `json:"taux_endettement_after"`
	ResteAVivreBefore     float64 `json:"reste_a_vivre_before"`
	ResteAVivreAfter      float64 `json:"reste_a_vivre_after"`
}

// GuardrailResponse reports the limits enforced on this request and whether
// they forced the refusal.
type GuardrailResponse struct {
	MaxDebtRatioAfter   float64  `json:"max_debt_ratio_after"`
	MinResteAVivreAfter float64  `json:"min_reste_a_vivre_after"`
	ForcedRefusal       bool     `json:"forced_refusal"`
	Reasons             []string `json:"reasons,omitempty"`
}

// DebugResponse exposes the head of the feature vector for diagnosis.
type DebugResponse struct {
	Features []float64 `json:"features_first_30"`
}

// ScoreApplicationResponse is the decision payload the wizard renders.
type ScoreApplicationResponse struct {
	Decision          int                 `json:"decision"`
	Reason            string              `json:"reason"`
	Reasons           []string            `json:"reasons,omitempty"`
	RiskScoreModel    float64             `json:"risk_score_model"`
	RiskScoreAdjusted float64             `json:"risk_score_adjusted"`
	Threshold         float64             `json:"threshold"`
	AgentAdjustment   float64             `json:"agent_adjustment"`
	AgentComment      string              `json:"agent_comment,omitempty"`
	Credit            CreditTermsResponse `json:"credit"`
	KPIs              KPIResponse         `json:"kpis"`
	Guardrails        *GuardrailResponse  `json:"guardrails,omitempty"`
	Debug             *DebugResponse      `json:"debug,omitempty"`
}

// RawPredictResponse mirrors the original scoring API for pre-computed
// vectors.
type RawPredictResponse struct {
	ProbaTarget1 float64 `json:"proba_target_1"`
	Decision     int     `json:"decision"`
	Threshold    float64 `json:"threshold"`
	ModelType    string  `json:"model_type"`
}

// RawPredictionResult is one row of a batch response.
type RawPredictionResult struct {
	ProbaTarget1 float64 `json:"proba_target_1"`
	Decision     int     `json:"decision"`
}

// RawBatchResponse mirrors the original batch API.
type RawBatchResponse struct {
	Threshold   float64               `json:"threshold"`
	ModelType   string                `json:"model_type"`
	Predictions []RawPredictionResult `json:"predictions"`
}

// ScheduleEntryResponse is one line of an amortization schedule.
type ScheduleEntryResponse struct {
	Periode        int     `json:"periode"`
	Principal      float64 `json:"principal"`
	Interets       float64 `json:"interets"`
	Total          float64 `json:"total"`
	CapitalRestant float64 `json:"capital_restant"`
}

// SimulateCreditResponse carries the cost breakdown of a simulated credit.
type SimulateCreditResponse struct {
	Montant        float64                 `json:"montant"`
	DureeMois      int                     `json:"duree_mois"`
	TauxAnnuel     float64                 `json:"taux_annuel"`
	Mensualite     float64                 `json:"mensualite"`
	CoutTotal      float64                 `json:"cout_total"`
	InteretsTotaux float64                 `json:"interets_totaux"`
	KPIs           *KPIResponse            `json:"kpis,omitempty"`
	Echeancier     []ScheduleEntryResponse `json:"echeancier,omitempty"`
}

// GuardrailDefaultsResponse documents the limits applied when a request
// enables guardrails without overriding them.
type GuardrailDefaultsResponse struct {
	MaxDebtRatioAfter   float64 `json:"max_debt_ratio_after"`
	MinResteAVivreAfter float64 `json:"min_reste_a_vivre_after"`
}

// ModelInfoResponse is the static descriptor served by the model-info
// endpoint.
type ModelInfoResponse struct {
	ModelType          string                    `json:"model_type"`
	NumFeatures        int                       `json:"n_features"`
	FeatureNames       []string                  `json:"feature_names"`
	FeatureLayout      string                    `json:"feature_layout"`
	UsesScaler         bool                      `json:"uses_scaler"`
	ThresholdDefault   float64                   `json:"threshold_default"`
	AgentAdjustmentMin float64                   `json:"agent_adjustment_min"`
	AgentAdjustmentMax float64                   `json:"agent_adjustment_max"`
	GuardrailDefaults  GuardrailDefaultsResponse `json:"guardrails_default"`
	DefaultAnnualRate  float64                   `json:"default_annual_rate"`
}
