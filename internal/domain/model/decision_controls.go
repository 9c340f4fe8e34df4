package model

// Wire-level defaults shared by the decision pipeline and the HTTP layer.
const (
	DefaultThreshold  = 0.5
	DefaultAnnualRate = 0.035

	AgentAdjustmentMin = -0.30
	AgentAdjustmentMax = 0.30

	DefaultMaxDebtRatioAfter = 0.45
	DefaultMinResidualAfter  = 0.0
)

// DecisionControls carries the per-request knobs that sit outside the
// application record: the decision threshold, the agent's bounded override,
// and the optional guardrail configuration.
type DecisionControls struct {
	Threshold         float64
	AgentAdjustment   float64
	AgentComment      string
	UseGuardrails     bool
	MaxDebtRatioAfter float64
	MinResidualAfter  float64
	Debug             bool
}

// DefaultControls returns the controls applied when a request specifies none.
func DefaultControls() DecisionControls {
	return DecisionControls{
		Threshold:         DefaultThreshold,
		MaxDebtRatioAfter: DefaultMaxDebtRatioAfter,
		MinResidualAfter:  DefaultMinResidualAfter,
	}
}
