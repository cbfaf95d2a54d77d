package solver

import (
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Cubic solves ax³ + bx² + cx + d = 0 with Cardano's method.
//
// With q = -b³/(27a³) + bc/(6a²) - d/(2a) and r = c/(3a) - b²/(9a²), every
// root has the form u + v - b/(3a) where u is a cube root of q + √(q²+r³)
// and v a cube root of q - √(q²+r³). All nine (u, v) pairs are tried; a
// candidate is kept when it is not already in the result and the polynomial
// vanishes there within the solver tolerance.
//
// The result holds the accepted roots in discovery order. Repeated roots are
// collapsed, so a cubic with a double or triple root returns fewer than
// three values.
func (s *Solver) Cubic(a, b, c, d float64) []complexnum.Complex {
	q := -(b*b*b)/(27*a*a*a) + (b*c)/(6*a*a) - d/(2*a)
	r := c/(3*a) - (b*b)/(9*a*a)

	qc := complexnum.Real(q)
	rc := complexnum.Real(r)

	sqrts := Sqrt(complexnum.Add(complexnum.Pow(qc, 2), complexnum.Pow(rc, 3)))
	cbrt1 := Cbrt(complexnum.Add(qc, sqrts[0]))
	cbrt2 := Cbrt(complexnum.Add(qc, sqrts[1]))

	shift := complexnum.Real(b / (3 * a))
	coeffs := []float64{a, b, c, d}

	roots := make([]complexnum.Complex, 0, 3)
	for _, u := range cbrt1 {
		for _, v := range cbrt2 {
			x := complexnum.Sub(complexnum.Add(u, v), shift)
			if s.tol.Contains(roots, x) {
				continue
			}
			if s.tol.IsZero(Evaluate(coeffs, x)) {
				roots = append(roots, x)
			}
		}
	}
	return roots
}
