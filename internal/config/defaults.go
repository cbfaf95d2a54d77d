package config

import (
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
)

// Default configuration values.
const (
	DefaultFileName       = ".polyroot.yaml"
	DefaultEnvVar         = "POLYROOT_CONFIG"
	DefaultToleranceValue = complexnum.DefaultToleranceValue
	DefaultToleranceMode  = string(complexnum.ToleranceModeRelative)
	DefaultOutputFormat   = "text"
	DefaultPrecision      = complexnum.DefaultPrecision
	DefaultRandomMax      = 50
	DefaultTestsDirectory = "tests"
	DefaultTestsPattern   = "*.json"
	DefaultParallelism    = 4
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyToleranceDefaults(cfg)
	applyOutputDefaults(cfg)
	applyRandomDefaults(cfg)
	applyTestsDefaults(cfg)
}

func applyToleranceDefaults(cfg *Config) {
	if cfg.Tolerance == nil {
		cfg.Tolerance = &ToleranceConfig{}
	}
	if cfg.Tolerance.Value == 0 {
		cfg.Tolerance.Value = DefaultToleranceValue
	}
	if cfg.Tolerance.Mode == "" {
		cfg.Tolerance.Mode = DefaultToleranceMode
	}
}

func applyOutputDefaults(cfg *Config) {
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Output.Precision == nil {
		p := DefaultPrecision
		cfg.Output.Precision = &p
	}
}

func applyRandomDefaults(cfg *Config) {
	if cfg.Random == nil {
		cfg.Random = &RandomConfig{}
	}
	if cfg.Random.Max == 0 {
		cfg.Random.Max = DefaultRandomMax
	}
}

func applyTestsDefaults(cfg *Config) {
	if cfg.Tests == nil {
		cfg.Tests = &TestsConfig{}
	}
	if cfg.Tests.Directory == "" {
		cfg.Tests.Directory = DefaultTestsDirectory
	}
	if cfg.Tests.Pattern == "" {
		cfg.Tests.Pattern = DefaultTestsPattern
	}
	if cfg.Tests.Parallelism == 0 {
		cfg.Tests.Parallelism = DefaultParallelism
	}
}

// ToleranceValue converts the tolerance section into a complexnum.Tolerance.
// Call after defaults have been applied.
func (c *Config) ToleranceValue() complexnum.Tolerance {
	mode, _ := complexnum.ParseToleranceMode(c.Tolerance.Mode)
	return complexnum.Tolerance{Value: c.Tolerance.Value, Mode: mode}
}

// Formatter builds the display formatter described by the configuration.
// Call after defaults have been applied.
func (c *Config) Formatter() complexnum.Formatter {
	return complexnum.Formatter{Tolerance: c.ToleranceValue(), Precision: *c.Output.Precision}
}
