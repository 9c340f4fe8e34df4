package valueobject

import "strings"

// EmploymentStatus is an immutable value object for the applicant's
// professional situation. Any string is a legal status; only the seven
// canonical values below participate in the model's one-hot encoding, the
// rest (including "Étudiant") encode as all zeros.
type EmploymentStatus struct {
	value string
}

var (
	EmploymentCDI           = EmploymentStatus{value: "CDI"}
	EmploymentCDD           = EmploymentStatus{value: "CDD"}
	EmploymentInterim       = EmploymentStatus{value: "Intérimaire"}
	EmploymentIndependant   = EmploymentStatus{value: "Indépendant"}
	EmploymentFonctionnaire = EmploymentStatus{value: "Fonctionnaire"}
	EmploymentRetraite      = EmploymentStatus{value: "Retraité"}
	EmploymentSansEmploi    = EmploymentStatus{value: "Sans emploi"}
)

// EmploymentOneHotWidth is the number of slots the status occupies in the
// feature vector.
const EmploymentOneHotWidth = 7

// employmentOneHot fixes the encoding order. The position of each status in
// this table is part of the trained model's input contract and must not be
// reordered.
var employmentOneHot = [EmploymentOneHotWidth]EmploymentStatus{
	EmploymentCDI,
	EmploymentCDD,
	EmploymentInterim,
	EmploymentIndependant,
	EmploymentFonctionnaire,
	EmploymentRetraite,
	EmploymentSansEmploi,
}

// EmploymentStatusFromString builds an EmploymentStatus from raw form input.
// Surrounding whitespace is stripped; unknown statuses are preserved verbatim.
func EmploymentStatusFromString(s string) EmploymentStatus {
	trimmed := strings.TrimSpace(s)
	for _, known := range employmentOneHot {
		if known.value == trimmed {
			return known
		}
	}
	return EmploymentStatus{value: trimmed}
}

// OneHotIndex returns the status's slot in the employment one-hot block and
// whether it has one.
func (e EmploymentStatus) OneHotIndex() (int, bool) {
	for i, known := range employmentOneHot {
		if known.value == e.value {
			return i, true
		}
	}
	return 0, false
}

// EmploymentOneHotLabels returns the canonical status labels in encoding
// order.
func EmploymentOneHotLabels() []string {
	labels := make([]string, EmploymentOneHotWidth)
	for i, known := range employmentOneHot {
		labels[i] = known.value
	}
	return labels
}

// IsPermanent reports whether the applicant holds an open-ended contract.
func (e EmploymentStatus) IsPermanent() bool {
	return e.value == EmploymentCDI.value
}

// IsUnemployed reports whether the applicant declared no employment.
func (e EmploymentStatus) IsUnemployed() bool {
	return e.value == EmploymentSansEmploi.value
}

// String returns the raw status label.
func (e EmploymentStatus) String() string {
	return e.value
}

// IsZero returns true if the status has not been set.
func (e EmploymentStatus) IsZero() bool {
	return e.value == ""
}

// Equal checks equality with another EmploymentStatus.
func (e EmploymentStatus) Equal(other EmploymentStatus) bool {
	return e.value == other.value
}
