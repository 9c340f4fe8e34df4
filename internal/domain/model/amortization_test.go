package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyInstallment(t *testing.T) {
	t.Run("matches the annuity formula", func(t *testing.T) {
		assert.InDelta(t, 181.92, MonthlyInstallment(10000, 60, 0.035), 0.05)
	})

	t.Run("splits evenly at zero rate", func(t *testing.T) {
		assert.Equal(t, 1000.0, MonthlyInstallment(12000, 12, 0))
	})

	t.Run("grows with principal and rate, shrinks with term", func(t *testing.T) {
		base := MonthlyInstallment(10000, 48, 0.04)
		assert.Greater(t, MonthlyInstallment(20000, 48, 0.04), base)
		assert.Greater(t, MonthlyInstallment(10000, 48, 0.08), base)
		assert.Less(t, MonthlyInstallment(10000, 72, 0.04), base)
	})

	t.Run("floors degenerate inputs", func(t *testing.T) {
		assert.Equal(t, 0.0, MonthlyInstallment(-5000, 0, -0.1))
		assert.Equal(t, 1200.0, MonthlyInstallment(1200, 0, 0))
	})
}

func TestAmortizationSchedule(t *testing.T) {
	t.Run("repays the principal to the cent", func(t *testing.T) {
		schedule := AmortizationSchedule(12000, 12, 0.05)
		require.Len(t, schedule, 12)

		sum := decimal.Zero
		for _, entry := range schedule {
			sum = sum.Add(entry.Principal)
			assert.True(t, entry.Total.Equal(entry.Principal.Add(entry.Interest)),
				"period %d: total %s != principal %s + interest %s",
				entry.Period, entry.Total, entry.Principal, entry.Interest)
		}
		assert.True(t, sum.Equal(decimal.NewFromInt(12000)), "principal sum %s", sum)
		assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero())
	})

	t.Run("balance decreases every period", func(t *testing.T) {
		schedule := AmortizationSchedule(10000, 24, 0.06)
		require.Len(t, schedule, 24)

		previous := decimal.NewFromInt(10000)
		for _, entry := range schedule {
			assert.True(t, entry.RemainingBalance.LessThan(previous),
				"period %d: balance %s did not decrease from %s",
				entry.Period, entry.RemainingBalance, previous)
			previous = entry.RemainingBalance
		}
	})

	t.Run("charges no interest at zero rate", func(t *testing.T) {
		schedule := AmortizationSchedule(12000, 12, 0)
		require.Len(t, schedule, 12)

		for _, entry := range schedule {
			assert.True(t, entry.Interest.IsZero())
			assert.True(t, entry.Total.Equal(decimal.NewFromInt(1000)))
		}
	})

	t.Run("returns nil for a degenerate loan", func(t *testing.T) {
		assert.Nil(t, AmortizationSchedule(0, 12, 0.05))
		assert.Nil(t, AmortizationSchedule(10000, 0, 0.05))
	})
}
