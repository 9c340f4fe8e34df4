package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyInstallment computes the fixed monthly payment of an amortizing loan
// using the closed-form annuity formula:
//
//	monthlyRate = annualRate / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// Inputs are floored before use: principal at 0, termMonths at 1, annualRate
// at 0, so the function never divides by zero. A zero rate degenerates to a
// straight-line split.
func MonthlyInstallment(principal float64, termMonths int, annualRate float64) float64 {
	if principal < 0 {
		principal = 0
	}
	if termMonths < 1 {
		termMonths = 1
	}
	if annualRate < 0 {
		annualRate = 0
	}

	monthlyRate := annualRate / 12.0
	n := float64(termMonths)

	if monthlyRate <= 0 {
		return principal / n
	}

	factor := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * factor / (factor - 1)
}

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule. Monetary amounts are rounded to cents.
type AmortizationEntry struct {
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// AmortizationSchedule expands a loan into its per-period breakdown. The
// payment comes from MonthlyInstallment; decimal arithmetic keeps the running
// balance exact and the last period absorbs rounding drift so the balance
// reaches exactly zero.
func AmortizationSchedule(principal float64, termMonths int, annualRate float64) []AmortizationEntry {
	if termMonths <= 0 || principal <= 0 {
		return nil
	}
	if annualRate < 0 {
		annualRate = 0
	}

	monthlyRate := annualRate / 12.0
	monthlyRateDec := decimal.NewFromFloat(monthlyRate)
	payment := decimal.NewFromFloat(MonthlyInstallment(principal, termMonths, annualRate)).Round(2)

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := decimal.NewFromFloat(principal).Round(2)

	for period := 1; period <= termMonths; period++ {
		interest := remaining.Mul(monthlyRateDec).Round(2)
		principalPart := payment.Sub(interest)
		total := payment

		// Last period: adjust for rounding so balance reaches exactly zero.
		if period == termMonths {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			Principal:        principalPart,
			Interest:         interest,
			Total:            total,
			RemainingBalance: remaining,
		})
	}

	return schedule
}
