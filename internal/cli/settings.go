package cli

import (
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/polyroot/internal/config"
	"github.com/AndreyAkinshin/polyroot/internal/errors"
)

// settings is the effective configuration for one invocation: the config
// file (if any) with command-line overrides applied.
type settings struct {
	Config *config.Config
	Path   string // Config file in use; empty when running on defaults
}

// loadSettings resolves and loads the configuration file, prints its
// warnings and applies global flag overrides.
func (a *app) loadSettings() (*settings, error) {
	path, err := config.Resolve(a.opts.ConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to locate configuration")
	}

	cfg := config.Default()
	if path != "" {
		var warnings []string
		cfg, warnings, err = config.LoadAndValidate(path)
		if err != nil {
			return nil, &errors.PolyrootError{
				Kind:    errors.KindConfig,
				Message: "invalid configuration " + path,
				Cause:   err,
			}
		}
		for _, w := range warnings {
			a.out.WarningSimple("%s: %s", path, w)
		}
		a.logger.Debug("configuration loaded", zap.String("path", path), zap.Int("warnings", len(warnings)))
	} else {
		a.logger.Debug("no configuration file; using defaults")
	}

	applyOverrides(cfg, a.opts)
	if err := config.Validate(cfg); err != nil {
		return nil, errors.Validation(err, "invalid command-line override")
	}

	return &settings{Config: cfg, Path: path}, nil
}

// applyOverrides copies explicitly set global flags over cfg.
func applyOverrides(cfg *config.Config, opts *GlobalOptions) {
	if opts.Tolerance != nil {
		cfg.Tolerance.Value = *opts.Tolerance
	}
	if opts.ToleranceMode != "" {
		cfg.Tolerance.Mode = opts.ToleranceMode
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Precision != nil {
		p := *opts.Precision
		cfg.Output.Precision = &p
	}
	if opts.Seed != nil {
		s := *opts.Seed
		cfg.Random.Seed = &s
	}
}
