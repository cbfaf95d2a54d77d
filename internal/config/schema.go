// Package config provides configuration loading and validation for .polyroot.yaml.
package config

// Config represents the complete .polyroot.yaml configuration.
type Config struct {
	Schema    string           `yaml:"$schema,omitempty" json:"$schema,omitempty"`
	Tolerance *ToleranceConfig `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
	Output    *OutputConfig    `yaml:"output,omitempty" json:"output,omitempty"`
	Random    *RandomConfig    `yaml:"random,omitempty" json:"random,omitempty"`
	Tests     *TestsConfig     `yaml:"tests,omitempty" json:"tests,omitempty"`
}

// ToleranceConfig configures floating-point equality for root comparison.
type ToleranceConfig struct {
	Value float64 `yaml:"value,omitempty" json:"value,omitempty"` // Threshold (default: 0.01)
	Mode  string  `yaml:"mode,omitempty" json:"mode,omitempty"`   // "relative" or "absolute"
}

// OutputConfig configures how roots are rendered.
type OutputConfig struct {
	Format    string `yaml:"format,omitempty" json:"format,omitempty"`       // "text", "json" or "yaml"
	Precision *int   `yaml:"precision,omitempty" json:"precision,omitempty"` // Fractional digits in text output
}

// RandomConfig configures coefficient generation when no coefficients are given.
type RandomConfig struct {
	Max  int     `yaml:"max,omitempty" json:"max,omitempty"`   // Coefficients are drawn from [0, Max)
	Seed *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"` // Fixed seed; time-based when unset
}

// TestsConfig configures the reference test suites run by "polyroot check".
type TestsConfig struct {
	Directory   string `yaml:"directory,omitempty" json:"directory,omitempty"`
	Pattern     string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty" json:"parallelism,omitempty"`
}
