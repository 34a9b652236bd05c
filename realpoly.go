/*
Package realpoly is a library of single-variable polynomials with real coefficients.

The poly package implements the polynomials, their arithmetic and calculus,
their evaluation, parsing and formatting, the search of their real roots and
their sampling. The plot package renders sampled polynomials as HTML or PNG.
*/
package realpoly

import (
	"log/slog"

	"github.com/tuneinsight/realpoly/utils"
)

// SetLogger configures the logger used by all the packages of the module.
// Passing nil disables logging, which is the default.
func SetLogger(l *slog.Logger) {
	utils.SetLogger(l)
}
