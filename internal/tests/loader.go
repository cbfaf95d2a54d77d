package tests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AndreyAkinshin/polyroot/internal/schema"
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// rawCase mirrors the on-disk case layout before value conversion.
type rawCase struct {
	Description string `json:"description"`
	Input       struct {
		Coefficients []json.RawMessage `json:"coefficients"`
	} `json:"input"`
	Output    []json.RawMessage `json:"output"`
	Tolerance *float64          `json:"tolerance"`
}

// LoadTestSuite loads all test cases from a suite directory.
func LoadTestSuite(testsDir, suite, pattern string) ([]TestCase, error) {
	suiteDir := filepath.Join(testsDir, suite)

	if _, err := os.Stat(suiteDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("test suite directory not found: %s", suiteDir)
	}

	matches, err := findMatches(suiteDir, pattern)
	if err != nil {
		return nil, err
	}

	var cases []TestCase
	for _, path := range matches {
		tc, err := LoadTestCase(path)
		if err != nil {
			return nil, fmt.Errorf("test suite %q: %w (file: %s)", suite, err, path)
		}
		tc.Suite = suite
		cases = append(cases, *tc)
	}

	// Sort by name for deterministic order
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases, nil
}

// LoadAllSuites loads test cases from all suite directories.
// Suites without matching cases are omitted.
func LoadAllSuites(testsDir, pattern string) (map[string][]TestCase, error) {
	entries, err := os.ReadDir(testsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tests directory: %w", err)
	}

	suites := make(map[string][]TestCase)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		suite := entry.Name()
		cases, err := LoadTestSuite(testsDir, suite, pattern)
		if err != nil {
			return nil, err
		}

		if len(cases) > 0 {
			suites[suite] = cases
		}
	}

	return suites, nil
}

// LoadTestCase loads a single test case from a JSON file.
func LoadTestCase(path string) (*TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := schema.ValidateCase(data); err != nil {
		return nil, err
	}

	var raw rawCase
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	coeffs := make([]float64, len(raw.Input.Coefficients))
	for i, msg := range raw.Input.Coefficients {
		v, err := parseReal(msg)
		if err != nil {
			return nil, fmt.Errorf("input.coefficients[%d]: %w", i, err)
		}
		coeffs[i] = v
	}

	expected := make([]complexnum.Complex, len(raw.Output))
	for i, msg := range raw.Output {
		c, err := parseRoot(msg)
		if err != nil {
			return nil, fmt.Errorf("output[%d]: %w", i, err)
		}
		expected[i] = c
	}

	return &TestCase{
		Name:         strings.TrimSuffix(filepath.Base(path), ".json"),
		Path:         path,
		Description:  raw.Description,
		Coefficients: coeffs,
		Expected:     expected,
		Tolerance:    raw.Tolerance,
	}, nil
}

// parseReal decodes a JSON number or a special float string.
func parseReal(msg json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		v, ok := parseSpecialFloat(s)
		if !ok {
			return 0, fmt.Errorf("unknown special float %q", s)
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(msg, &v); err != nil {
		return 0, fmt.Errorf("expected number, got %s", msg)
	}
	return v, nil
}

// parseRoot decodes {"real": x, "imag": y} or a bare real value.
func parseRoot(msg json.RawMessage) (complexnum.Complex, error) {
	var obj struct {
		Real json.RawMessage `json:"real"`
		Imag json.RawMessage `json:"imag"`
	}
	if err := json.Unmarshal(msg, &obj); err != nil || obj.Real == nil {
		re, err := parseReal(msg)
		if err != nil {
			return complexnum.Complex{}, err
		}
		return complexnum.Real(re), nil
	}

	re, err := parseReal(obj.Real)
	if err != nil {
		return complexnum.Complex{}, fmt.Errorf("real: %w", err)
	}
	im, err := parseReal(obj.Imag)
	if err != nil {
		return complexnum.Complex{}, fmt.Errorf("imag: %w", err)
	}
	return complexnum.New(re, im), nil
}

// findMatches finds files under dir whose base name matches pattern.
// A leading "**/" is accepted and ignored, since the walk is always recursive.
func findMatches(dir, pattern string) ([]string, error) {
	pattern = strings.TrimPrefix(pattern, "**/")
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var matches []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matched, _ := filepath.Match(pattern, d.Name()); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
