package model

// KPISet holds the affordability ratios derived from an application. "Before"
// figures ignore the requested credit; "after" figures include its computed
// installment. Immutable once computed.
type KPISet struct {
	DebtRatioBefore float64
	ResidualBefore  float64
	DebtRatioAfter  float64
	ResidualAfter   float64
}

// ComputeKPIs derives the four affordability figures. Ratio denominators use
// max(income, 1): a non-positive income is normally intercepted by the
// fast-reject path before this runs, the guard only keeps the math finite.
func ComputeKPIs(income, charges, existingLoans, installment float64) KPISet {
	base := income
	if base < 1 {
		base = 1
	}

	return KPISet{
		DebtRatioBefore: (charges + existingLoans) / base,
		ResidualBefore:  income - charges - existingLoans,
		DebtRatioAfter:  (charges + existingLoans + installment) / base,
		ResidualAfter:   income - charges - existingLoans - installment,
	}
}
