package valueobject

// Decision is an immutable value object representing the final verdict on a
// credit application.
type Decision struct {
	value string
}

var (
	DecisionAccept = Decision{value: "ACCEPT"}
	DecisionRefuse = Decision{value: "REFUSE"}
)

// DecisionFromBool maps an eligibility verdict to a Decision.
func DecisionFromBool(accepted bool) Decision {
	if accepted {
		return DecisionAccept
	}
	return DecisionRefuse
}

// Int returns the wire representation: 1 for accept, 0 for refuse.
func (d Decision) Int() int {
	if d.value == "ACCEPT" {
		return 1
	}
	return 0
}

// IsAccepted returns true if the application was accepted.
func (d Decision) IsAccepted() bool {
	return d.value == "ACCEPT"
}

// String returns the string representation.
func (d Decision) String() string {
	return d.value
}

// IsZero returns true if the decision has not been set.
func (d Decision) IsZero() bool {
	return d.value == ""
}

// Equal checks equality with another Decision.
func (d Decision) Equal(other Decision) bool {
	return d.value == other.value
}
