package poly

import (
	"math"
	"strconv"
	"strings"
)

// String renders p in descending exponent order, e.g. "2*x^2 - x + 0.5".
// Coefficients equal to 1 and exponents 1 and 0 are implicit and the zero
// polynomial renders as "0". The output is accepted by Parse.
func (p Polynomial) String() string {
	return p.render(func(c float64) string { return formatFloat(c) + "*" }, formatFloat, func(e uint) string {
		return "x^" + strconv.FormatUint(uint64(e), 10)
	})
}

// LaTeX renders p in typeset notation, e.g. "2x^{2} - x + 0.5".
func (p Polynomial) LaTeX() string {
	return p.render(latexFloat, latexFloat, func(e uint) string {
		return "x^{" + strconv.FormatUint(uint64(e), 10) + "}"
	})
}

// render writes the terms of p. coeff formats a coefficient followed by
// a variable, constant formats a constant term and power formats x^e for e > 1.
func (p Polynomial) render(coeff, constant func(float64) string, power func(uint) string) string {

	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder

	for i, t := range p.terms {

		c := t.Coeff

		switch {
		case i == 0 && math.Signbit(c):
			sb.WriteString("-")
		case i > 0 && math.Signbit(c):
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}

		c = math.Abs(c)

		if t.Exponent == 0 {
			sb.WriteString(constant(c))
			continue
		}

		if c != 1 {
			sb.WriteString(coeff(c))
		}

		if t.Exponent == 1 {
			sb.WriteString("x")
		} else {
			sb.WriteString(power(t.Exponent))
		}
	}

	return sb.String()
}

func formatFloat(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// latexFloat writes scientific notation as m \times 10^{e}.
func latexFloat(c float64) string {
	s := formatFloat(c)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	e := strings.TrimPrefix(s[i+1:], "+")
	neg := strings.HasPrefix(e, "-")
	e = strings.TrimLeft(strings.TrimPrefix(e, "-"), "0")
	if neg {
		e = "-" + e
	}
	return s[:i] + ` \times 10^{` + e + "}"
}
