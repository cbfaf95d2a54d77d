package complexnum

import (
	"fmt"
	"math"
)

// ToleranceMode selects how a Tolerance compares two floats.
type ToleranceMode string

// Tolerance modes.
const (
	// ToleranceModeRelative compares the difference against the larger magnitude.
	// Values whose larger magnitude is itself within tolerance of zero are equal.
	ToleranceModeRelative ToleranceMode = "relative"
	// ToleranceModeAbsolute compares the plain difference.
	ToleranceModeAbsolute ToleranceMode = "absolute"
)

// DefaultToleranceValue is the threshold used when none is configured.
const DefaultToleranceValue = 0.01

// ValidToleranceModes returns the accepted mode names.
func ValidToleranceModes() []string {
	return []string{string(ToleranceModeRelative), string(ToleranceModeAbsolute)}
}

// ParseToleranceMode converts a mode name. The empty string maps to relative.
func ParseToleranceMode(s string) (ToleranceMode, bool) {
	switch ToleranceMode(s) {
	case "", ToleranceModeRelative:
		return ToleranceModeRelative, true
	case ToleranceModeAbsolute:
		return ToleranceModeAbsolute, true
	}
	return "", false
}

// Tolerance decides when two floating values are close enough to be equal.
// The zero value is not useful; start from DefaultTolerance.
type Tolerance struct {
	Value float64
	Mode  ToleranceMode
}

// DefaultTolerance returns a relative tolerance of DefaultToleranceValue.
func DefaultTolerance() Tolerance {
	return Tolerance{Value: DefaultToleranceValue, Mode: ToleranceModeRelative}
}

// Relative returns a relative tolerance with the given threshold.
func Relative(value float64) Tolerance {
	return Tolerance{Value: value, Mode: ToleranceModeRelative}
}

// Absolute returns an absolute tolerance with the given threshold.
func Absolute(value float64) Tolerance {
	return Tolerance{Value: value, Mode: ToleranceModeAbsolute}
}

// Validate reports whether t can be used for comparisons.
func (t Tolerance) Validate() error {
	if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
		return fmt.Errorf("tolerance must be finite, got %v", t.Value)
	}
	if t.Value < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", t.Value)
	}
	if _, ok := ParseToleranceMode(string(t.Mode)); !ok {
		return fmt.Errorf("invalid tolerance mode %q (must be \"relative\" or \"absolute\")", t.Mode)
	}
	return nil
}

func (t Tolerance) String() string {
	mode := t.Mode
	if mode == "" {
		mode = ToleranceModeRelative
	}
	return fmt.Sprintf("%v %s", t.Value, mode)
}

// FloatEqual reports whether a and b are equal within t.
func (t Tolerance) FloatEqual(a, b float64) bool {
	if a == b {
		return true
	}
	if t.Mode == ToleranceModeAbsolute {
		return math.Abs(a-b) <= t.Value
	}
	m := math.Max(math.Abs(a), math.Abs(b))
	if m <= t.Value {
		return true
	}
	return math.Abs(a-b)/m <= t.Value
}

// Equal reports whether both components of a and b are equal within t.
func (t Tolerance) Equal(a, b Complex) bool {
	return t.FloatEqual(a.Re, b.Re) && t.FloatEqual(a.Im, b.Im)
}

// RealIsZero reports whether the real part of c is zero within t.
func (t Tolerance) RealIsZero(c Complex) bool {
	return t.FloatEqual(c.Re, 0)
}

// ImagIsZero reports whether the imaginary part of c is zero within t.
func (t Tolerance) ImagIsZero(c Complex) bool {
	return t.FloatEqual(c.Im, 0)
}

// IsZero reports whether c is zero within t.
func (t Tolerance) IsZero(c Complex) bool {
	return t.RealIsZero(c) && t.ImagIsZero(c)
}

// Contains reports whether any element of cs equals c within t.
func (t Tolerance) Contains(cs []Complex, c Complex) bool {
	for _, x := range cs {
		if t.Equal(x, c) {
			return true
		}
	}
	return false
}

// Equal compares a and b with the default tolerance.
func Equal(a, b Complex) bool {
	return DefaultTolerance().Equal(a, b)
}

// IsZero checks c against zero with the default tolerance.
func IsZero(c Complex) bool {
	return DefaultTolerance().IsZero(c)
}
