package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborbank/scoring-service/internal/domain/model"
	"github.com/harborbank/scoring-service/internal/domain/service"
	"github.com/harborbank/scoring-service/internal/domain/valueobject"
)

func buildFor(t *testing.T, app model.CreditApplication) []float64 {
	t.Helper()
	installment := model.MonthlyInstallment(app.Principal(), app.TermMonths(), app.AnnualRate())
	kpis := model.ComputeKPIs(app.MonthlyIncome(), app.MonthlyCharges(), app.ExistingLoans(), installment)
	vec, err := service.NewFeatureBuilder().Build(app, installment, kpis)
	require.NoError(t, err)
	return vec
}

func TestFeatureBuilder_NamedSlots(t *testing.T) {
	app := healthyApplication()
	vec := buildFor(t, app)

	require.Len(t, vec, service.FeatureVectorWidth)

	assert.Equal(t, 35.0, vec[0])    // age
	assert.Equal(t, 4000.0, vec[1])  // revenu_mensuel
	assert.Equal(t, 800.0, vec[2])   // charges_mensuelles
	assert.Equal(t, 0.0, vec[3])     // credits_encours
	assert.Equal(t, 60.0, vec[4])    // anciennete_pro
	assert.Equal(t, 5.0, vec[5])     // annees_residence
	assert.Equal(t, 1.0, vec[6])     // statut_pro_CDI
	assert.InDelta(t, 0.2, vec[13], 1e-9)  // ratio_charges
	assert.InDelta(t, 0.2, vec[15], 1e-9)  // taux_endettement_before
	assert.InDelta(t, 3200, vec[16], 1e-9) // reste_a_vivre_before
	assert.Equal(t, 10000.0, vec[17])
	assert.Equal(t, 48.0, vec[18])
	assert.InDelta(t, 223.56, vec[19], 0.2)
	assert.InDelta(t, 0.2559, vec[20], 0.001)
	assert.InDelta(t, 2976.44, vec[21], 1.0)
	assert.Equal(t, 1.0, vec[24]) // objet_credit_Véhicule

	// Exactly one slot set per one-hot block.
	var empSum, purposeSum float64
	for i := 6; i < 13; i++ {
		empSum += vec[i]
	}
	for i := 22; i < 28; i++ {
		purposeSum += vec[i]
	}
	assert.Equal(t, 1.0, empSum)
	assert.Equal(t, 1.0, purposeSum)
}

func TestFeatureBuilder_UnknownCategoriesEncodeAllZeros(t *testing.T) {
	app := model.NewCreditApplication(
		22, valueobject.EmploymentStatusFromString("Étudiant"), 3,
		1200, 300, 0, 1,
		5000, 24, valueobject.CreditPurposeFromString("Vacances"), 0.04,
	)
	vec := buildFor(t, app)

	for i := 6; i < 13; i++ {
		assert.Zerof(t, vec[i], "employment slot %d", i)
	}
	for i := 22; i < 28; i++ {
		assert.Zerof(t, vec[i], "purpose slot %d", i)
	}
}

func TestFeatureBuilder_Deterministic(t *testing.T) {
	first := buildFor(t, healthyApplication())
	second := buildFor(t, healthyApplication())
	assert.Equal(t, first, second)
}

func TestFeatureBuilder_FillerTracksProfile(t *testing.T) {
	base := buildFor(t, healthyApplication())

	richer := model.NewCreditApplication(
		35, valueobject.EmploymentCDI, 60,
		4100, 800, 0, 5,
		10000, 48, valueobject.PurposeVehicle, 0.035,
	)
	shifted := buildFor(t, richer)

	// The filler block is a deterministic mix of the profile: changing the
	// income must move it, and by the same offset in every filler cell.
	assert.NotEqual(t, base[28], shifted[28])
	offset := shifted[28] - base[28]
	for i := 29; i < service.FeatureVectorWidth; i++ {
		assert.InDeltaf(t, offset, shifted[i]-base[i], 1e-9, "filler cell %d", i)
	}
}

func TestFeatureBuilder_RejectsNonFiniteValues(t *testing.T) {
	// A literal "NaN" string survives sanitization as an actual NaN; the
	// builder is the guard that keeps it away from the model.
	app := model.NewCreditApplication(
		35, valueobject.EmploymentCDI, 60,
		math.NaN(), 800, 0, 5,
		10000, 48, valueobject.PurposeVehicle, 0.035,
	)

	installment := model.MonthlyInstallment(app.Principal(), app.TermMonths(), app.AnnualRate())
	kpis := model.ComputeKPIs(app.MonthlyIncome(), app.MonthlyCharges(), app.ExistingLoans(), installment)
	_, err := service.NewFeatureBuilder().Build(app, installment, kpis)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "revenu_mensuel")
}

func TestFeatureNames(t *testing.T) {
	names := service.FeatureNames()
	require.Len(t, names, service.FeatureVectorWidth)

	assert.Equal(t, "age", names[0])
	assert.Equal(t, "statut_pro_CDI", names[6])
	assert.Equal(t, "statut_pro_Sans_emploi", names[12])
	assert.Equal(t, "taux_endettement_after", names[20])
	assert.Equal(t, "objet_credit_Achat_immobilier", names[22])
	assert.Equal(t, "objet_credit_Autre", names[27])
	assert.Equal(t, "filler_28", names[28])
	assert.Equal(t, "filler_199", names[199])

	// Callers get a copy, not the shared table.
	names[0] = "mutated"
	assert.Equal(t, "age", service.FeatureNames()[0])
}
