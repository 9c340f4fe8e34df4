package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmploymentStatusOneHotIndexes(t *testing.T) {
	tests := []struct {
		status EmploymentStatus
		index  int
	}{
		{EmploymentCDI, 0},
		{EmploymentCDD, 1},
		{EmploymentInterim, 2},
		{EmploymentIndependant, 3},
		{EmploymentFonctionnaire, 4},
		{EmploymentRetraite, 5},
		{EmploymentSansEmploi, 6},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			idx, ok := tc.status.OneHotIndex()
			assert.True(t, ok)
			assert.Equal(t, tc.index, idx)
		})
	}
}

func TestEmploymentStatusUnknownHasNoSlot(t *testing.T) {
	for _, raw := range []string{"Étudiant", "freelance", "", "CDI permanent"} {
		status := EmploymentStatusFromString(raw)
		_, ok := status.OneHotIndex()
		assert.False(t, ok, "status %q should not map to a one-hot slot", raw)
	}
}

func TestEmploymentStatusFromStringTrimsAndCanonicalizes(t *testing.T) {
	status := EmploymentStatusFromString("  CDI ")
	assert.True(t, status.Equal(EmploymentCDI))
	assert.True(t, status.IsPermanent())
	assert.False(t, status.IsUnemployed())

	unemployed := EmploymentStatusFromString("Sans emploi")
	assert.True(t, unemployed.IsUnemployed())
}

func TestCreditPurposeOneHotIndexes(t *testing.T) {
	tests := []struct {
		purpose CreditPurpose
		index   int
	}{
		{PurposeRealEstate, 0},
		{PurposeRenovation, 1},
		{PurposeVehicle, 2},
		{PurposeConsumption, 3},
		{PurposeCashFlow, 4},
		{PurposeOther, 5},
	}

	for _, tc := range tests {
		idx, ok := tc.purpose.OneHotIndex()
		assert.True(t, ok)
		assert.Equal(t, tc.index, idx)
	}

	_, ok := CreditPurposeFromString("Vacances").OneHotIndex()
	assert.False(t, ok)
}

func TestDecision(t *testing.T) {
	assert.Equal(t, 1, DecisionAccept.Int())
	assert.Equal(t, 0, DecisionRefuse.Int())
	assert.True(t, DecisionFromBool(true).IsAccepted())
	assert.False(t, DecisionFromBool(false).IsAccepted())
	assert.True(t, Decision{}.IsZero())
	assert.Equal(t, 0, Decision{}.Int())
}
