package valueobject

import "strings"

// CreditPurpose is an immutable value object for what the requested credit
// finances. Like EmploymentStatus, unknown purposes are preserved and encode
// as all zeros in the one-hot block.
type CreditPurpose struct {
	value string
}

var (
	PurposeRealEstate  = CreditPurpose{value: "Achat immobilier"}
	PurposeRenovation  = CreditPurpose{value: "Travaux"}
	PurposeVehicle     = CreditPurpose{value: "Véhicule"}
	PurposeConsumption = CreditPurpose{value: "Consommation"}
	PurposeCashFlow    = CreditPurpose{value: "Trésorerie"}
	PurposeOther       = CreditPurpose{value: "Autre"}
)

// PurposeOneHotWidth is the number of slots the purpose occupies in the
// feature vector.
const PurposeOneHotWidth = 6

// purposeOneHot fixes the encoding order; part of the model input contract.
var purposeOneHot = [PurposeOneHotWidth]CreditPurpose{
	PurposeRealEstate,
	PurposeRenovation,
	PurposeVehicle,
	PurposeConsumption,
	PurposeCashFlow,
	PurposeOther,
}

// CreditPurposeFromString builds a CreditPurpose from raw form input.
func CreditPurposeFromString(s string) CreditPurpose {
	trimmed := strings.TrimSpace(s)
	for _, known := range purposeOneHot {
		if known.value == trimmed {
			return known
		}
	}
	return CreditPurpose{value: trimmed}
}

// OneHotIndex returns the purpose's slot in the purpose one-hot block and
// whether it has one.
func (p CreditPurpose) OneHotIndex() (int, bool) {
	for i, known := range purposeOneHot {
		if known.value == p.value {
			return i, true
		}
	}
	return 0, false
}

// PurposeOneHotLabels returns the canonical purpose labels in encoding order.
func PurposeOneHotLabels() []string {
	labels := make([]string, PurposeOneHotWidth)
	for i, known := range purposeOneHot {
		labels[i] = known.value
	}
	return labels
}

// String returns the raw purpose label.
func (p CreditPurpose) String() string {
	return p.value
}

// IsZero returns true if the purpose has not been set.
func (p CreditPurpose) IsZero() bool {
	return p.value == ""
}

// Equal checks equality with another CreditPurpose.
func (p CreditPurpose) Equal(other CreditPurpose) bool {
	return p.value == other.value
}
