package complexnum

import (
	"strconv"
)

// DefaultPrecision is the number of fractional digits printed by String.
const DefaultPrecision = 6

// Formatter renders complex numbers for display.
//
// A value that is zero within Tolerance renders as "0". When only one
// component is non-zero, only that component is shown ("2.000000" or
// "-1.000000i"). Otherwise the imaginary magnitude is joined with " + " or
// " - " depending on its sign.
type Formatter struct {
	Tolerance Tolerance
	Precision int
}

// DefaultFormatter uses the default tolerance and precision.
func DefaultFormatter() Formatter {
	return Formatter{Tolerance: DefaultTolerance(), Precision: DefaultPrecision}
}

// Format returns the display string for c.
func (f Formatter) Format(c Complex) string {
	realZero := f.Tolerance.RealIsZero(c)
	imagZero := f.Tolerance.ImagIsZero(c)

	switch {
	case realZero && imagZero:
		return "0"
	case realZero:
		return f.float(c.Im) + "i"
	case imagZero:
		return f.float(c.Re)
	case c.Im < 0:
		return f.float(c.Re) + " - " + f.float(-c.Im) + "i"
	default:
		return f.float(c.Re) + " + " + f.float(c.Im) + "i"
	}
}

// FormatAll formats each value of cs.
func (f Formatter) FormatAll(cs []Complex) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = f.Format(c)
	}
	return out
}

func (f Formatter) float(v float64) string {
	prec := f.Precision
	if prec < 0 {
		prec = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// String formats c with DefaultFormatter.
func (c Complex) String() string {
	return DefaultFormatter().Format(c)
}
