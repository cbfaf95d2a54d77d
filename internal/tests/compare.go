package tests

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// CompareRoots checks that actual holds the expected roots in any order.
// Finite components are compared with tol; an expected NaN matches only NaN.
// On mismatch it returns a human-readable explanation.
func CompareRoots(expected, actual []complexnum.Complex, tol complexnum.Tolerance) (bool, string) {
	if len(expected) != len(actual) {
		return false, fmt.Sprintf("root: expected %d roots, got %d", len(expected), len(actual))
	}

	matched := make([]bool, len(actual))
	for i, exp := range expected {
		found := false
		for j, act := range actual {
			if matched[j] {
				continue
			}
			if rootsEqual(exp, act, tol) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false, fmt.Sprintf("root[%d]: no matching root found for %s (tolerance: %s)", i, describe(exp), tol)
		}
	}

	return true, ""
}

func rootsEqual(expected, actual complexnum.Complex, tol complexnum.Tolerance) bool {
	return floatsEqual(expected.Re, actual.Re, tol) && floatsEqual(expected.Im, actual.Im, tol)
}

func floatsEqual(expected, actual float64, tol complexnum.Tolerance) bool {
	if math.IsNaN(expected) {
		return math.IsNaN(actual)
	}
	return tol.FloatEqual(expected, actual)
}

// describe renders a root for diagnostics, showing both components verbatim.
func describe(c complexnum.Complex) string {
	return fmt.Sprintf("(%v, %vi)", c.Re, c.Im)
}

// parseSpecialFloat converts special float string representations.
func parseSpecialFloat(s string) (float64, bool) {
	switch s {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	return 0, false
}
