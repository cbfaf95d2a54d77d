package output

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Number is a float64 that encodes non-finite values as the strings
// "NaN", "Infinity" and "-Infinity" in JSON, matching the reference case format.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// Root is the machine-readable form of one complex root.
type Root struct {
	Real Number `json:"real" yaml:"real"`
	Imag Number `json:"imag" yaml:"imag"`
}

// Solution is the machine-readable result of solving one polynomial.
type Solution struct {
	Kind         string   `json:"kind" yaml:"kind"`
	Coefficients []Number `json:"coefficients" yaml:"coefficients"`
	Roots        []Root   `json:"roots" yaml:"roots"`
}

// NewSolution assembles a Solution from solver inputs and outputs.
func NewSolution(kind string, coeffs []float64, roots []complexnum.Complex) Solution {
	s := Solution{
		Kind:         kind,
		Coefficients: make([]Number, len(coeffs)),
		Roots:        make([]Root, len(roots)),
	}
	for i, c := range coeffs {
		s.Coefficients[i] = Number(c)
	}
	for i, r := range roots {
		s.Roots[i] = Root{Real: Number(r.Re), Imag: Number(r.Im)}
	}
	return s
}

// Args echoes generated coefficients as "Args: a, b, c, d".
func (w *Writer) Args(coeffs []float64) {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = fmt.Sprintf("%f", c)
	}
	w.Println("Args: %s", strings.Join(parts, ", "))
}

// Roots prints each root on its own line using f.
func (w *Writer) Roots(f complexnum.Formatter, roots []complexnum.Complex) {
	for _, r := range roots {
		w.Println("%s", f.Format(r))
	}
}

// Solution renders s in the given format. Text output prints one root per line.
func (w *Writer) Solution(format string, f complexnum.Formatter, s Solution) error {
	switch format {
	case FormatText, "":
		for _, r := range s.Roots {
			w.Println("%s", f.Format(complexnum.New(float64(r.Real), float64(r.Imag))))
		}
		return nil
	case FormatJSON:
		return w.JSON(s)
	case FormatYAML:
		return w.YAML(s)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// JSON writes v to stdout as indented JSON.
func (w *Writer) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	w.Println("%s", data)
	return nil
}

// YAML writes v to stdout as YAML.
func (w *Writer) YAML(v interface{}) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
