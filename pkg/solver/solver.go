// Package solver finds the roots of quadratic and cubic polynomials with real
// coefficients in closed form.
//
// Roots are built from the n-th roots of complex numbers (De Moivre), so the
// results carry trigonometric rounding error. The cubic solver relies on a
// complexnum.Tolerance both to discard duplicate candidates and to decide
// which candidates actually satisfy the polynomial.
package solver

import (
	"errors"
	"fmt"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Sentinel errors returned by the solver.
var (
	// ErrInvalidDegree is returned by Root for a negative degree.
	ErrInvalidDegree = errors.New("root degree must not be negative")
	// ErrUnsupportedDegree is returned by Solve when the coefficients do not
	// describe a quadratic or a cubic.
	ErrUnsupportedDegree = errors.New("unsupported polynomial degree")
)

// Kind names the polynomial shape solved for a coefficient list.
type Kind string

// Supported polynomial kinds.
const (
	KindQuadratic Kind = "quadratic"
	KindCubic     Kind = "cubic"
)

// KindOf returns the polynomial kind for n coefficients.
func KindOf(n int) (Kind, bool) {
	switch n {
	case 3:
		return KindQuadratic, true
	case 4:
		return KindCubic, true
	}
	return "", false
}

// Solver solves polynomials using a fixed comparison tolerance.
// A Solver holds no mutable state and is safe for concurrent use.
type Solver struct {
	tol complexnum.Tolerance
}

// New creates a Solver that compares candidate roots with tol.
func New(tol complexnum.Tolerance) *Solver {
	return &Solver{tol: tol}
}

// Default creates a Solver with complexnum.DefaultTolerance.
func Default() *Solver {
	return New(complexnum.DefaultTolerance())
}

// Tolerance returns the tolerance used by s.
func (s *Solver) Tolerance() complexnum.Tolerance {
	return s.tol
}

// Solve dispatches on the number of coefficients, highest degree first:
// three coefficients are solved as a quadratic, four as a cubic.
func (s *Solver) Solve(coeffs ...float64) ([]complexnum.Complex, error) {
	kind, ok := KindOf(len(coeffs))
	if !ok {
		return nil, fmt.Errorf("%w: got %d coefficients, want 3 (quadratic) or 4 (cubic)", ErrUnsupportedDegree, len(coeffs))
	}
	switch kind {
	case KindQuadratic:
		return s.Quadratic(coeffs[0], coeffs[1], coeffs[2]), nil
	default:
		return s.Cubic(coeffs[0], coeffs[1], coeffs[2], coeffs[3]), nil
	}
}

// Evaluate returns the value of the polynomial with the given real
// coefficients (highest degree first) at x.
func Evaluate(coeffs []float64, x complexnum.Complex) complexnum.Complex {
	val := complexnum.Zero
	degree := len(coeffs) - 1
	for i, c := range coeffs {
		term := complexnum.Mul(complexnum.Real(c), complexnum.Pow(x, degree-i))
		val = complexnum.Add(val, term)
	}
	return val
}

// Residuals evaluates the polynomial at every root.
func Residuals(coeffs []float64, roots []complexnum.Complex) []complexnum.Complex {
	out := make([]complexnum.Complex, len(roots))
	for i, r := range roots {
		out[i] = Evaluate(coeffs, r)
	}
	return out
}

// Quadratic solves ax² + bx + c = 0 with the default tolerance.
func Quadratic(a, b, c float64) []complexnum.Complex {
	return Default().Quadratic(a, b, c)
}

// Cubic solves ax³ + bx² + cx + d = 0 with the default tolerance.
func Cubic(a, b, c, d float64) []complexnum.Complex {
	return Default().Cubic(a, b, c, d)
}

// Solve dispatches on the coefficient count with the default tolerance.
func Solve(coeffs ...float64) ([]complexnum.Complex, error) {
	return Default().Solve(coeffs...)
}
