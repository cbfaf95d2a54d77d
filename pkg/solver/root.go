package solver

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Root returns all degree-th roots of c.
//
// The roots are equally spaced on the circle of radius |c|^(1/degree); the
// k-th root has angle (θ + 2πk)/degree where θ is the phase of c. Degrees 0
// and 1 yield that many zero values.
func Root(c complexnum.Complex, degree int) ([]complexnum.Complex, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}

	ret := make([]complexnum.Complex, degree)
	if degree < 2 {
		return ret, nil
	}

	r, theta := c.Polar()
	magRoot := math.Pow(r, 1/float64(degree))

	for k := 0; k < degree; k++ {
		angle := (theta + 2*math.Pi*float64(k)) / float64(degree)
		ret[k] = complexnum.FromPolar(magRoot, angle)
	}

	return ret, nil
}

// Sqrt returns both square roots of c.
func Sqrt(c complexnum.Complex) []complexnum.Complex {
	roots, _ := Root(c, 2)
	return roots
}

// Cbrt returns the three cube roots of c.
func Cbrt(c complexnum.Complex) []complexnum.Complex {
	roots, _ := Root(c, 3)
	return roots
}
