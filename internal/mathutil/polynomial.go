// Package mathutil provides small numerical helpers shared by the
// interpolation packages.
package mathutil

// Horner evaluates the polynomial Σ coeffs[i]·xⁱ at x.
// Coefficients are ordered lowest power first. An empty slice evaluates to 0.
func Horner(coeffs []float64, x float64) float64 {
	var result float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result*x + coeffs[i]
	}
	return result
}

// Derivative returns the coefficients of the derivative of the polynomial,
// lowest power first. The derivative of a constant is the empty polynomial.
func Derivative(coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		return []float64{}
	}

	deriv := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		deriv[i-1] = float64(i) * coeffs[i]
	}
	return deriv
}

// NthDerivative applies Derivative n times.
func NthDerivative(coeffs []float64, n int) []float64 {
	for range n {
		coeffs = Derivative(coeffs)
	}
	return coeffs
}

// WitchOfAgnesi evaluates the Witch of Agnesi curve for a circle of the given
// radius at x: 8r³ / (x² + 4r²).
func WitchOfAgnesi(x, radius float64) float64 {
	return agnesiNumeratorFactor * radius * radius * radius /
		(x*x + agnesiDenominatorFactor*radius*radius)
}
