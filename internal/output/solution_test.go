package output

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

func TestNumber_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-2.5, "-2.5"},
		{1e21, "1e+21"},
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"Infinity"`},
		{math.Inf(-1), `"-Infinity"`},
	}

	for _, tt := range tests {
		got, err := json.Marshal(Number(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", tt.in, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewSolution(t *testing.T) {
	t.Parallel()
	got := NewSolution("quadratic", []float64{1, 0, 1}, []complexnum.Complex{complexnum.New(0, 1), complexnum.New(0, -1)})
	want := Solution{
		Kind:         "quadratic",
		Coefficients: []Number{1, 0, 1},
		Roots:        []Root{{Real: 0, Imag: 1}, {Real: 0, Imag: -1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewSolution() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriter_Args(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.Args([]float64{12, 0, 49, 7})
	if got, want := stdout.String(), "Args: 12.000000, 0.000000, 49.000000, 7.000000\n"; got != want {
		t.Errorf("Args() = %q, want %q", got, want)
	}
}

func TestWriter_Roots(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.Roots(complexnum.DefaultFormatter(), []complexnum.Complex{complexnum.Real(2), complexnum.New(1, -1)})
	if got, want := stdout.String(), "2.000000\n1.000000 - 1.000000i\n"; got != want {
		t.Errorf("Roots() = %q, want %q", got, want)
	}
}

func TestWriter_Solution(t *testing.T) {
	sol := NewSolution("quadratic", []float64{1, -3, 2}, []complexnum.Complex{complexnum.Real(2), complexnum.Real(1)})

	t.Run("text", func(t *testing.T) {
		w, stdout, _ := newTestWriter()
		f := complexnum.Formatter{Tolerance: complexnum.DefaultTolerance(), Precision: 2}
		if err := w.Solution(FormatText, f, sol); err != nil {
			t.Fatalf("Solution() error = %v", err)
		}
		if got, want := stdout.String(), "2.00\n1.00\n"; got != want {
			t.Errorf("Solution() = %q, want %q", got, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		w, stdout, _ := newTestWriter()
		if err := w.Solution(FormatJSON, complexnum.DefaultFormatter(), sol); err != nil {
			t.Fatalf("Solution() error = %v", err)
		}
		var decoded struct {
			Kind         string    `json:"kind"`
			Coefficients []float64 `json:"coefficients"`
			Roots        []struct {
				Real float64 `json:"real"`
				Imag float64 `json:"imag"`
			} `json:"roots"`
		}
		if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
		}
		if decoded.Kind != "quadratic" || len(decoded.Roots) != 2 || decoded.Roots[0].Real != 2 {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		w, stdout, _ := newTestWriter()
		if err := w.Solution(FormatYAML, complexnum.DefaultFormatter(), sol); err != nil {
			t.Fatalf("Solution() error = %v", err)
		}
		var decoded map[string]interface{}
		if err := yaml.Unmarshal(stdout.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, stdout.String())
		}
		if decoded["kind"] != "quadratic" {
			t.Errorf("kind = %v, want quadratic", decoded["kind"])
		}
		if !strings.Contains(stdout.String(), "roots:\n") {
			t.Errorf("output missing roots key:\n%s", stdout.String())
		}
	})

	t.Run("non-finite json", func(t *testing.T) {
		w, stdout, _ := newTestWriter()
		bad := NewSolution("quadratic", []float64{0, 1, 1}, []complexnum.Complex{complexnum.New(math.NaN(), math.Inf(-1))})
		if err := w.Solution(FormatJSON, complexnum.DefaultFormatter(), bad); err != nil {
			t.Fatalf("Solution() error = %v", err)
		}
		if !strings.Contains(stdout.String(), `"real": "NaN"`) || !strings.Contains(stdout.String(), `"imag": "-Infinity"`) {
			t.Errorf("Solution() = %s, want special float strings", stdout.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		w, _, _ := newTestWriter()
		if err := w.Solution("xml", complexnum.DefaultFormatter(), sol); err == nil {
			t.Error("Solution() expected error for unknown format")
		}
	})
}
