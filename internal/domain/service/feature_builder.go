package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Feature layout v2
// ---------------------------------------------------------------------------

// FeatureVectorWidth is the input width the bundled artifact was trained
// against.
const FeatureVectorWidth = 200

// FeatureLayoutVersion names the index assignment below. The artifact and the
// layout version move together; retraining against a different layout means
// bumping this.
const FeatureLayoutVersion = "v2"

// Index assignments. These are the model's input contract: reordering any of
// them invalidates the bundled artifact.
const (
	idxAge             = 0
	idxIncome          = 1
	idxCharges         = 2
	idxExistingLoans   = 3
	idxSeniority       = 4
	idxResidenceYears  = 5
	idxEmploymentStart = 6 // 7 one-hot slots, order fixed by valueobject
	idxChargesRatio    = 13
	idxLoansRatio      = 14
	idxDebtRatioBefore = 15
	idxResidualBefore  = 16
	idxPrincipal       = 17
	idxTerm            = 18
	idxInstallment     = 19
	idxDebtRatioAfter  = 20
	idxResidualAfter   = 21
	idxPurposeStart    = 22 // 6 one-hot slots, order fixed by valueobject
	idxFillerStart     = 28
)

// Filler coefficients (layout v2). The filler block exists only to satisfy
// the fixed-width input contract; the weights keep it in the numeric range
// the model saw at training time.
const (
	fillerWeightAge         = 0.001
	fillerWeightIncome      = 0.0004
	fillerWeightCharges     = 0.0005
	fillerWeightLoans       = 0.0005
	fillerWeightInstallment = 0.0008
	fillerWeightSeniority   = 0.0006
	fillerWeightResidence   = 0.01
	fillerWeightCDI         = 0.05
	fillerWeightUnemployed  = -0.05
	fillerWeightDebtRatio   = 0.3
	fillerWeightResidualK   = 0.2 // applied to residual-after expressed in k€

	fillerModSevenStep = 0.03
	fillerModFiveStep  = 0.02
)

// ---------------------------------------------------------------------------
// FeatureBuilder
// ---------------------------------------------------------------------------

// FeatureBuilder maps a sanitized application to the fixed-width numeric
// vector the model consumes. Deterministic, stateless, and safe for
// concurrent use.
type FeatureBuilder struct{}

// NewFeatureBuilder creates a new FeatureBuilder.
func NewFeatureBuilder() *FeatureBuilder {
	return &FeatureBuilder{}
}

// Build produces the layout-v2 vector for an application, its computed
// installment, and its KPIs. Every element of the result is finite; a
// non-finite value (a "NaN" smuggled through a form field, for instance)
// aborts construction with a ValidationError.
func (b *FeatureBuilder) Build(
	app model.CreditApplication,
	installment float64,
	kpis model.KPISet,
) ([]float64, error) {
	vec := make([]float64, FeatureVectorWidth)

	vec[idxAge] = app.Age()
	vec[idxIncome] = app.MonthlyIncome()
	vec[idxCharges] = app.MonthlyCharges()
	vec[idxExistingLoans] = app.ExistingLoans()
	vec[idxSeniority] = app.SeniorityMonths()
	vec[idxResidenceYears] = app.ResidenceYears()

	if slot, ok := app.Employment().OneHotIndex(); ok {
		vec[idxEmploymentStart+slot] = 1
	}

	base := app.MonthlyIncome()
	if base < 1 {
		base = 1
	}
	vec[idxChargesRatio] = app.MonthlyCharges() / base
	vec[idxLoansRatio] = app.ExistingLoans() / base
	vec[idxDebtRatioBefore] = kpis.DebtRatioBefore
	vec[idxResidualBefore] = kpis.ResidualBefore

	vec[idxPrincipal] = app.Principal()
	vec[idxTerm] = float64(app.TermMonths())
	vec[idxInstallment] = installment

	vec[idxDebtRatioAfter] = kpis.DebtRatioAfter
	vec[idxResidualAfter] = kpis.ResidualAfter

	if slot, ok := app.Purpose().OneHotIndex(); ok {
		vec[idxPurposeStart+slot] = 1
	}

	baseMix := fillerWeightAge*app.Age() +
		fillerWeightIncome*app.MonthlyIncome() +
		fillerWeightCharges*app.MonthlyCharges() +
		fillerWeightLoans*app.ExistingLoans() +
		fillerWeightInstallment*installment +
		fillerWeightSeniority*app.SeniorityMonths() +
		fillerWeightResidence*app.ResidenceYears() +
		fillerWeightCDI*indicator(app.Employment().IsPermanent()) +
		fillerWeightUnemployed*indicator(app.Employment().IsUnemployed()) +
		fillerWeightDebtRatio*kpis.DebtRatioAfter +
		fillerWeightResidualK*(kpis.ResidualAfter/1000.0)

	for i := idxFillerStart; i < FeatureVectorWidth; i++ {
		vec[i] = baseMix + float64(i%7)*fillerModSevenStep - float64(i%5)*fillerModFiveStep
	}

	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, model.NewValidationError(
				"Valeurs invalides : NaN/inf ou valeurs non numériques",
				featureNames[i],
			)
		}
	}

	return vec, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ---------------------------------------------------------------------------
// Feature names
// ---------------------------------------------------------------------------

var featureNames = buildFeatureNames()

// FeatureNames returns the layout-v2 slot names in index order. The slice is
// a copy; callers may keep it.
func FeatureNames() []string {
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return names
}

func buildFeatureNames() []string {
	names := make([]string, FeatureVectorWidth)

	names[idxAge] = "age"
	names[idxIncome] = "revenu_mensuel"
	names[idxCharges] = "charges_mensuelles"
	names[idxExistingLoans] = "credits_encours"
	names[idxSeniority] = "anciennete_pro"
	names[idxResidenceYears] = "annees_residence"

	for i, label := range valueobject.EmploymentOneHotLabels() {
		names[idxEmploymentStart+i] = "statut_pro_" + slug(label)
	}

	names[idxChargesRatio] = "ratio_charges"
	names[idxLoansRatio] = "ratio_credits"
	names[idxDebtRatioBefore] = "taux_endettement_before"
	names[idxResidualBefore] = "reste_a_vivre_before"
	names[idxPrincipal] = "montant_credit"
	names[idxTerm] = "duree_credit"
	names[idxInstallment] = "mensualite"
	names[idxDebtRatioAfter] = "taux_endettement_after"
	names[idxResidualAfter] = "reste_a_vivre_after"

	for i, label := range valueobject.PurposeOneHotLabels() {
		names[idxPurposeStart+i] = "objet_credit_" + slug(label)
	}

	for i := idxFillerStart; i < FeatureVectorWidth; i++ {
		names[i] = fmt.Sprintf("filler_%d", i)
	}

	return names
}

func slug(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}
