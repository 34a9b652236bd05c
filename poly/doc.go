// Package poly implements single-variable polynomials with float64 coefficients.
//
// A Polynomial is an immutable sparse sequence of Terms kept in canonical form:
// descending unique exponents, no zero coefficient. It supports addition,
// subtraction, multiplication, long division with remainder, derivation,
// integration, evaluation, parsing and formatting.
//
// Real roots are located by a RootFinder that scans a uniform grid for sign
// changes and bisects the resulting brackets. Sampler and Polynomial.Sample
// produce (x, y) sequences for plotting.
package poly
