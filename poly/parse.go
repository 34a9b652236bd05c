package poly

import (
	"strconv"
)

// Parse reads a polynomial in the variable x from its text form, for example
// "2*x^3 - x + 0.5", "3x^2+1" or "-x^{4} + 1e-3x".
//
// Terms are separated by '+' or '-'. A term is a coefficient, a power of x, or a
// coefficient followed by an optional '*' and a power of x. Repeated exponents
// are summed. Malformed input returns a *ParseError matching ErrParse; negative
// or non-integral exponents additionally match ErrInvalidExponent.
func Parse(s string) (Polynomial, error) {
	pr := &parser{input: s}
	terms, err := pr.parse()
	if err != nil {
		return Polynomial{}, err
	}
	return Polynomial{terms: canonicalize(terms)}, nil
}

type parser struct {
	input string
	pos   int
}

func (pr *parser) errorf(msg string) error {
	return &ParseError{Input: pr.input, Offset: pr.pos, Msg: msg, Err: ErrParse}
}

func (pr *parser) peek() byte {
	if pr.pos < len(pr.input) {
		return pr.input[pr.pos]
	}
	return 0
}

func (pr *parser) eof() bool {
	return pr.pos >= len(pr.input)
}

func (pr *parser) skipSpaces() {
	for !pr.eof() {
		switch pr.peek() {
		case ' ', '\t', '\n', '\r':
			pr.pos++
		default:
			return
		}
	}
}

func (pr *parser) parse() (terms []Term, err error) {

	pr.skipSpaces()

	if pr.eof() {
		return nil, pr.errorf("empty input")
	}

	sign := 1.0
	if c := pr.peek(); c == '+' || c == '-' {
		if c == '-' {
			sign = -1
		}
		pr.pos++
		pr.skipSpaces()
	}

	for {
		var t Term
		if t, err = pr.term(); err != nil {
			return nil, err
		}

		t.Coeff *= sign
		terms = append(terms, t)

		pr.skipSpaces()

		if pr.eof() {
			return terms, nil
		}

		switch pr.peek() {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return nil, pr.errorf("expected '+' or '-'")
		}

		pr.pos++
		pr.skipSpaces()
	}
}

// term reads [number] [['*'] x ['^' exponent]].
func (pr *parser) term() (t Term, err error) {

	t.Coeff = 1

	hasCoeff := isNumberStart(pr.peek())

	if hasCoeff {
		if t.Coeff, err = pr.number(); err != nil {
			return
		}
		pr.skipSpaces()
		if pr.peek() == '*' {
			pr.pos++
			pr.skipSpaces()
			if pr.peek() != 'x' {
				return t, pr.errorf("expected 'x' after '*'")
			}
		}
	}

	if pr.peek() != 'x' {
		if !hasCoeff {
			return t, pr.errorf("expected a coefficient or 'x'")
		}
		return
	}

	pr.pos++
	t.Exponent = 1

	pr.skipSpaces()

	if pr.peek() != '^' {
		return
	}

	pr.pos++
	pr.skipSpaces()

	t.Exponent, err = pr.exponent()

	return
}

func (pr *parser) exponent() (e uint, err error) {

	braced := pr.peek() == '{'
	if braced {
		pr.pos++
		pr.skipSpaces()
	}

	start := pr.pos

	neg := pr.peek() == '-'
	if neg || pr.peek() == '+' {
		pr.pos++
	}

	if !isNumberStart(pr.peek()) {
		return 0, pr.errorf("expected an exponent after '^'")
	}

	var f float64
	if f, err = pr.number(); err != nil {
		return
	}

	if neg {
		f = -f
	}

	if e, err = toExponent(f); err != nil {
		return 0, &ParseError{Input: pr.input, Offset: start, Msg: err.Error(), Err: ErrInvalidExponent}
	}

	if braced {
		pr.skipSpaces()
		if pr.peek() != '}' {
			return 0, pr.errorf("expected '}'")
		}
		pr.pos++
	}

	return
}

// number reads digits [. digits] [(e|E) [+|-] digits].
func (pr *parser) number() (float64, error) {

	start := pr.pos

	digits := pr.digits()
	if pr.peek() == '.' {
		pr.pos++
		digits += pr.digits()
	}

	if digits == 0 {
		return 0, pr.errorf("malformed number")
	}

	if c := pr.peek(); c == 'e' || c == 'E' {
		mark := pr.pos
		pr.pos++
		if c := pr.peek(); c == '+' || c == '-' {
			pr.pos++
		}
		if pr.digits() == 0 {
			pr.pos = mark
			return 0, pr.errorf("malformed exponent of number")
		}
	}

	f, err := strconv.ParseFloat(pr.input[start:pr.pos], 64)
	if err != nil {
		pr.pos = start
		return 0, pr.errorf("malformed number")
	}

	return f, nil
}

func (pr *parser) digits() (n int) {
	for !pr.eof() && isDigit(pr.peek()) {
		pr.pos++
		n++
	}
	return
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '.'
}
