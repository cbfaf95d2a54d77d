package solver

import (
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Quadratic solves ax² + bx + c = 0.
//
// The result always has two entries, one per square root of the discriminant,
// in the order Sqrt returns them. a is assumed non-zero; a zero a yields
// non-finite roots rather than an error.
func (s *Solver) Quadratic(a, b, c float64) []complexnum.Complex {
	disc := complexnum.Real(b*b - 4*a*c)
	negB := complexnum.Real(-b)
	twoA := complexnum.Real(2 * a)

	sqrts := Sqrt(disc)
	ret := make([]complexnum.Complex, len(sqrts))
	for i, sq := range sqrts {
		ret[i] = complexnum.Div(complexnum.Add(negB, sq), twoA)
	}
	return ret
}
