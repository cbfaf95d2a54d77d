package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/polyroot/internal/schema"
)

// ErrNoConfig is returned by Find when no configuration file exists.
var ErrNoConfig = errors.New(DefaultFileName + " not found in the current directory or any parent")

// Load reads and parses a configuration file without applying defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults reads a config file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a config file, checks it against the embedded JSON
// schema, applies defaults, validates and returns warnings for unknown fields.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	raw, err := decodeRaw(data)
	if err != nil {
		return nil, nil, err
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert config to JSON: %w", err)
	}
	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, nil, err
	}

	warnings := detectUnknownFields(raw)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, warnings, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, warnings, err
	}

	return &cfg, warnings, nil
}

// decodeRaw parses YAML into generic values. An empty document yields an
// empty mapping so that an empty file is a valid configuration.
func decodeRaw(data []byte) (map[string]interface{}, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if doc == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("config root must be a mapping, got %T", doc)
	}
	return m, nil
}

// Resolve picks the configuration file to use. An explicit path wins, then
// the environment variable, then a discovered .polyroot.yaml. It returns ""
// when no file applies.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(DefaultEnvVar); env != "" {
		return env, nil
	}
	path, err := Find()
	if errors.Is(err, ErrNoConfig) {
		return "", nil
	}
	return path, err
}

// Find walks up from the current working directory looking for .polyroot.yaml.
func Find() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindFrom(cwd)
}

// FindFrom walks up from startDir looking for .polyroot.yaml.
func FindFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, DefaultFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}
