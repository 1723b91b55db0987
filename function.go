package interpolation

import (
	"math"
	"strconv"
	"strings"

	"github.com/tphakala/go-interpolation/internal/mathutil"
)

// Curve maps x to a plot coordinate {x, y, 0}. The third component is
// always zero; it fills the z slot of plotting code that works in 3D.
type Curve func(x float64) [3]float64

// CenteredPolynomial is the polynomial Σ cᵢ·(x - Center)ⁱ.
type CenteredPolynomial struct {
	Coefficients Polynomial
	Center       float64
}

// Eval evaluates the polynomial at x.
func (c CenteredPolynomial) Eval(x float64) float64 {
	return mathutil.Horner(c.Coefficients, x-c.Center)
}

// Func returns Eval as a plain function value.
func (c CenteredPolynomial) Func() func(float64) float64 {
	return c.Eval
}

// Expression renders the polynomial in variable, lowest power first, e.g.
// "5 + 0.25*(x - 1570) - 0.375*(x - 1570)^2". Zero coefficients are
// omitted and unit coefficients are written without the factor.
func (c CenteredPolynomial) Expression(variable string) string {
	base := variable
	switch {
	case c.Center > 0:
		base = "(" + variable + " - " + formatFloat(c.Center) + ")"
	case c.Center < 0:
		base = "(" + variable + " + " + formatFloat(-c.Center) + ")"
	}

	var sb strings.Builder
	for i, coeff := range c.Coefficients {
		if coeff == 0 {
			continue
		}

		magnitude := math.Abs(coeff)
		switch {
		case sb.Len() == 0 && coeff < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && coeff < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		if i == 0 || magnitude != 1 {
			sb.WriteString(formatFloat(magnitude))
			if i > 0 {
				sb.WriteString("*")
			}
		}
		if i > 0 {
			sb.WriteString(base)
		}
		if i > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	if sb.Len() == 0 {
		return expressionZero
	}
	return sb.String()
}

// CoefficientsToFunction turns coefficients, lowest power first, into a
// Curve evaluating Σ cᵢ·(x - center)ⁱ. The coefficients are copied, so
// later changes to the slice do not affect the curve.
func CoefficientsToFunction(coeffs Polynomial, center float64) Curve {
	p := CenteredPolynomial{
		Coefficients: append(Polynomial(nil), coeffs...),
		Center:       center,
	}
	return func(x float64) [3]float64 {
		return [3]float64{x, p.Eval(x), 0}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
