package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harborbank/scoring-service/pkg/numeric"
)

func TestFloatTotality(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		def  float64
		want float64
	}{
		{"float", 1500.5, 0, 1500.5},
		{"int", 42, 0, 42},
		{"numeric string", "2800", 0, 2800},
		{"decimal string", "182.02", 0, 182.02},
		{"padded string", "  950 ", 0, 950},
		{"garbage string", "abc", 7, 7},
		{"comma decimal", "1500,50", 7, 7},
		{"empty string", "", 3, 3},
		{"nil", nil, 12, 12},
		{"object", map[string]interface{}{"x": 1}, 5, 5},
		{"slice", []interface{}{1.0}, 5, 5},
		{"bool true", true, 0, 1},
		{"bool false", false, 9, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.want, numeric.Float(tc.in, tc.def))
			})
		})
	}
}

func TestFloatPassesNonFiniteStringsThrough(t *testing.T) {
	assert.True(t, math.IsNaN(numeric.Float("NaN", 0)))
	assert.True(t, math.IsInf(numeric.Float("Inf", 0), 1))
}

func TestIntTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 34, numeric.Int("34.7", 0))
	assert.Equal(t, -2, numeric.Int(-2.9, 0))
	assert.Equal(t, 60, numeric.Int(60, 0))
	assert.Equal(t, 11, numeric.Int(nil, 11))
	assert.Equal(t, 11, numeric.Int("sixty", 11))
}

func TestBool(t *testing.T) {
	assert.True(t, numeric.Bool(true, false))
	assert.True(t, numeric.Bool("true", false))
	assert.True(t, numeric.Bool("1", false))
	assert.False(t, numeric.Bool("0", true))
	assert.True(t, numeric.Bool(1.0, false))
	assert.False(t, numeric.Bool(0, true))
	assert.True(t, numeric.Bool("oui", true))
	assert.False(t, numeric.Bool(nil, false))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.30, numeric.Clamp(5.0, -0.30, 0.30))
	assert.Equal(t, -0.30, numeric.Clamp(-1.2, -0.30, 0.30))
	assert.Equal(t, 0.05, numeric.Clamp(0.05, -0.30, 0.30))
	assert.Equal(t, 0.0, numeric.Clamp(0, 0, 1))
	assert.Equal(t, 1.0, numeric.Clamp(1, 0, 1))
}
