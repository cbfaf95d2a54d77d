package config

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Output formats accepted by output.format and --format.
var validFormats = []string{"text", "json", "yaml"}

// MaxPrecision bounds output.precision; float64 carries about 17 significant digits.
const MaxPrecision = 17

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return append([]string(nil), validFormats...)
}

// Validate checks a configuration with defaults applied.
func Validate(cfg *Config) error {
	if err := validateTolerance(cfg); err != nil {
		return err
	}
	if err := validateOutput(cfg); err != nil {
		return err
	}
	if err := validateRandom(cfg); err != nil {
		return err
	}
	return validateTests(cfg)
}

func validateTolerance(cfg *Config) error {
	if _, ok := complexnum.ParseToleranceMode(cfg.Tolerance.Mode); !ok {
		return &ValidationError{
			Field:   "tolerance.mode",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(complexnum.ValidToleranceModes(), ", "), cfg.Tolerance.Mode),
		}
	}
	if err := cfg.ToleranceValue().Validate(); err != nil {
		return &ValidationError{Field: "tolerance.value", Message: err.Error()}
	}
	return nil
}

func validateOutput(cfg *Config) error {
	if err := ValidateFormat(cfg.Output.Format); err != nil {
		return &ValidationError{Field: "output.format", Message: err.Error()}
	}
	if err := ValidatePrecision(*cfg.Output.Precision); err != nil {
		return &ValidationError{Field: "output.precision", Message: err.Error()}
	}
	return nil
}

func validateRandom(cfg *Config) error {
	if cfg.Random.Max < 1 {
		return &ValidationError{Field: "random.max", Message: fmt.Sprintf("must be positive, got %d", cfg.Random.Max)}
	}
	return nil
}

func validateTests(cfg *Config) error {
	if cfg.Tests.Parallelism < 1 {
		return &ValidationError{Field: "tests.parallelism", Message: fmt.Sprintf("must be positive, got %d", cfg.Tests.Parallelism)}
	}
	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	for _, f := range validFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("must be one of %s, got %q", strings.Join(validFormats, ", "), format)
}

// ValidatePrecision checks a fractional digit count.
func ValidatePrecision(p int) error {
	if p < 0 || p > MaxPrecision {
		return fmt.Errorf("must be between 0 and %d, got %d", MaxPrecision, p)
	}
	return nil
}
