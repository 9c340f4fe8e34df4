package model

import (
	"github.com/harborbank/scoring-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CreditApplication (sanitized business record, one per request)
// ---------------------------------------------------------------------------

// CreditApplication is the immutable, sanitized view of an applicant's
// submission. Demographic and financial figures are floored at zero; the
// requested-credit fields keep their raw values so the decision engine can
// distinguish a malformed request from a poor one.
type CreditApplication struct {
	age             float64
	employment      valueobject.EmploymentStatus
	seniorityMonths float64
	monthlyIncome   float64
	monthlyCharges  float64
	existingLoans   float64
	residenceYears  float64
	principal       float64
	termMonths      int
	purpose         valueobject.CreditPurpose
	annualRate      float64
}

// NewCreditApplication builds an application from sanitized input. It never
// fails: field-level validation is the decision engine's concern, after the
// fast-reject check has run.
func NewCreditApplication(
	age float64,
	employment valueobject.EmploymentStatus,
	seniorityMonths float64,
	monthlyIncome float64,
	monthlyCharges float64,
	existingLoans float64,
	residenceYears float64,
	principal float64,
	termMonths int,
	purpose valueobject.CreditPurpose,
	annualRate float64,
) CreditApplication {
	if annualRate < 0 {
		annualRate = 0
	}
	return CreditApplication{
		age:             floorZero(age),
		employment:      employment,
		seniorityMonths: floorZero(seniorityMonths),
		monthlyIncome:   monthlyIncome,
		monthlyCharges:  floorZero(monthlyCharges),
		existingLoans:   floorZero(existingLoans),
		residenceYears:  floorZero(residenceYears),
		principal:       principal,
		termMonths:      termMonths,
		purpose:         purpose,
		annualRate:      annualRate,
	}
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// ValidateCredit checks the requested-credit fields. A nil return means the
// request is well-formed; otherwise the ValidationError lists every offending
// field so the caller can surface them together.
func (a CreditApplication) ValidateCredit() *ValidationError {
	var fields []string
	if a.principal <= 0 {
		fields = append(fields, "montant_credit")
	}
	if a.termMonths <= 0 {
		fields = append(fields, "duree_credit")
	}
	if a.purpose.IsZero() {
		fields = append(fields, "objet_credit")
	}
	if len(fields) == 0 {
		return nil
	}
	return NewValidationError("Champs crédit manquants ou invalides", fields...)
}

// HasIncome reports whether the applicant declared a positive monthly income.
func (a CreditApplication) HasIncome() bool {
	return a.monthlyIncome > 0
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Age returns the applicant's age in years.
func (a CreditApplication) Age() float64 { return a.age }

// Employment returns the professional status.
func (a CreditApplication) Employment() valueobject.EmploymentStatus { return a.employment }

// SeniorityMonths returns the professional seniority in months.
func (a CreditApplication) SeniorityMonths() float64 { return a.seniorityMonths }

// MonthlyIncome returns the declared monthly income.
func (a CreditApplication) MonthlyIncome() float64 { return a.monthlyIncome }

// MonthlyCharges returns the declared recurring monthly charges.
func (a CreditApplication) MonthlyCharges() float64 { return a.monthlyCharges }

// ExistingLoans returns the total installment burden of loans already held.
func (a CreditApplication) ExistingLoans() float64 { return a.existingLoans }

// ResidenceYears returns the years spent at the current address.
func (a CreditApplication) ResidenceYears() float64 { return a.residenceYears }

// Principal returns the requested credit amount.
func (a CreditApplication) Principal() float64 { return a.principal }

// TermMonths returns the requested repayment term.
func (a CreditApplication) TermMonths() int { return a.termMonths }

// Purpose returns what the credit finances.
func (a CreditApplication) Purpose() valueobject.CreditPurpose { return a.purpose }

// AnnualRate returns the annual interest rate as a fraction (0.035 = 3.5%).
func (a CreditApplication) AnnualRate() float64 { return a.annualRate }
