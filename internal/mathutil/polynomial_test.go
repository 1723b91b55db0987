package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHorner tests polynomial evaluation against expanded forms.
func TestHorner(t *testing.T) {
	tests := []struct {
		name     string
		coeffs   []float64
		x        float64
		expected float64
	}{
		{"Empty", nil, 3.0, 0.0},
		{"Constant", []float64{7}, 100.0, 7.0},
		{"Line", []float64{1, 2}, 3.0, 7.0},
		{"Quadratic", []float64{1, -3, 2}, 2.0, 3.0},
		{"Cubic at zero", []float64{4, 1, 1, 1}, 0.0, 4.0},
		{"Cubic negative x", []float64{0, 0, 0, 1}, -2.0, -8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Horner(tt.coeffs, tt.x), 1e-15)
		})
	}
}

// TestDerivative tests coefficient differentiation.
func TestDerivative(t *testing.T) {
	assert.Equal(t, []float64{2, 6, 12}, Derivative([]float64{1, 2, 3, 4}))
	assert.Empty(t, Derivative([]float64{5}))
	assert.Empty(t, Derivative(nil))
}

// TestNthDerivative tests repeated differentiation.
func TestNthDerivative(t *testing.T) {
	coeffs := []float64{1, 1, 1, 1}
	assert.Equal(t, []float64{2, 6}, NthDerivative(coeffs, 2))
	assert.Equal(t, coeffs, NthDerivative(coeffs, 0))
	assert.Empty(t, NthDerivative(coeffs, 4))
}

// TestWitchOfAgnesi tests the curve against hand-computed values for radius 2.
func TestWitchOfAgnesi(t *testing.T) {
	assert.InDelta(t, 4.0, WitchOfAgnesi(0, 2), 1e-15)
	assert.InDelta(t, 3.2, WitchOfAgnesi(2, 2), 1e-15)
	assert.InDelta(t, 2.0, WitchOfAgnesi(4, 2), 1e-15)
	assert.InDelta(t, WitchOfAgnesi(6, 2), WitchOfAgnesi(-6, 2), 1e-15, "curve should be even")
}

// BenchmarkHorner benchmarks evaluation of a degree-10 polynomial.
func BenchmarkHorner(b *testing.B) {
	coeffs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	for b.Loop() {
		_ = Horner(coeffs, 0.5)
	}
}
