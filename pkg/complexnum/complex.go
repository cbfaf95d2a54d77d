// Package complexnum provides an immutable complex number value type with
// tolerance-based comparison and display formatting.
//
// All operations return new values; operands are never modified. Values built
// from trigonometric identities carry rounding error, so two Complex values
// must be compared with a Tolerance rather than with ==.
package complexnum

import (
	"math"
)

// Complex is a complex number with a real and an imaginary component.
type Complex struct {
	Re float64 `json:"real" yaml:"real"`
	Im float64 `json:"imag" yaml:"imag"`
}

// Zero is the additive identity.
var Zero = Complex{}

// One is the multiplicative identity.
var One = Complex{Re: 1}

// New creates a complex number from its components.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real creates a complex number with a zero imaginary part.
func Real(re float64) Complex {
	return Complex{Re: re}
}

// FromComplex128 converts a builtin complex value.
func FromComplex128(c complex128) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex128 converts c to the builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Add returns a + b.
func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a - b.
func Sub(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns a * b.
func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b by multiplying a with the conjugate of b and dividing by
// the squared magnitude of b. A zero divisor yields non-finite components.
func Div(a, b Complex) Complex {
	num := Mul(a, Conj(b))
	den := b.Re*b.Re + b.Im*b.Im
	return Complex{Re: num.Re / den, Im: num.Im / den}
}

// Pow raises c to an integer power by repeated multiplication.
// Pow(c, 0) is One; a negative exponent e yields Div(One, Pow(c, -e)).
func Pow(c Complex, e int) Complex {
	if e < 0 {
		return Div(One, Pow(c, -e))
	}
	ret := One
	for i := 0; i < e; i++ {
		ret = Mul(ret, c)
	}
	return ret
}

// Conj returns the complex conjugate of c.
func Conj(c Complex) Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Neg returns -c.
func Neg(c Complex) Complex {
	return Complex{Re: -c.Re, Im: -c.Im}
}

// Scale multiplies both components of c by f.
func Scale(c Complex, f float64) Complex {
	return Complex{Re: c.Re * f, Im: c.Im * f}
}

// Abs returns the magnitude of c.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

// Phase returns the angle of c in the range [-Pi, Pi].
func (c Complex) Phase() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Polar returns the magnitude and angle of c.
func (c Complex) Polar() (r, theta float64) {
	return c.Abs(), c.Phase()
}

// FromPolar builds a complex number from magnitude and angle.
func FromPolar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (c Complex) IsFinite() bool {
	return !math.IsNaN(c.Re) && !math.IsNaN(c.Im) &&
		!math.IsInf(c.Re, 0) && !math.IsInf(c.Im, 0)
}
