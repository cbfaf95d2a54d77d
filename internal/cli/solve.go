package cli

import (
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/AndreyAkinshin/polyroot/internal/config"
	"github.com/AndreyAkinshin/polyroot/internal/errors"
	"github.com/AndreyAkinshin/polyroot/internal/output"
	"github.com/AndreyAkinshin/polyroot/pkg/complexnum"
	"github.com/AndreyAkinshin/polyroot/pkg/solver"
)

// randomCoefficientCount is the number of coefficients generated when none
// are given; the result is solved as a cubic.
const randomCoefficientCount = 4

// cmdSolve solves the polynomial described by args, or a random cubic when
// args is empty.
func (a *app) cmdSolve(args []string) error {
	if len(args) != 0 && len(args) != 3 && len(args) != 4 {
		return errors.Usagef("expected 0, 3 or 4 coefficients, got %d", len(args))
	}

	s, err := a.loadSettings()
	if err != nil {
		return err
	}
	cfg := s.Config

	var coeffs []float64
	if len(args) == 0 {
		seed := resolveSeed(cfg)
		coeffs = randomCoefficients(seed, cfg.Random.Max, randomCoefficientCount)
		a.logger.Debug("generated coefficients", zap.Uint64("seed", seed), zap.Float64s("coefficients", coeffs))
		if cfg.Output.Format == output.FormatText {
			a.out.Args(coeffs)
		}
	} else {
		coeffs, err = parseCoefficients(args)
		if err != nil {
			return err
		}
	}

	tol := cfg.ToleranceValue()
	roots, err := solver.New(tol).Solve(coeffs...)
	if err != nil {
		return errors.Wrap(err, "cannot solve")
	}
	kind, _ := solver.KindOf(len(coeffs))

	a.logRoots(kind, coeffs, roots)

	sol := output.NewSolution(string(kind), coeffs, roots)
	if err := a.out.Solution(cfg.Output.Format, cfg.Formatter(), sol); err != nil {
		return errors.Wrap(err, "cannot render roots")
	}
	return nil
}

// parseCoefficients converts argument text to coefficients.
func parseCoefficients(args []string) ([]float64, error) {
	coeffs := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Usagef("invalid coefficient %q: must be a number", arg)
		}
		coeffs[i] = v
	}
	return coeffs, nil
}

// resolveSeed returns the configured seed or a time-based one.
func resolveSeed(cfg *config.Config) uint64 {
	if cfg.Random.Seed != nil {
		return *cfg.Random.Seed
	}
	return uint64(time.Now().UnixNano())
}

// randomCoefficients draws n integer-valued coefficients from [0, limit).
func randomCoefficients(seed uint64, limit, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = float64(rng.IntN(limit))
	}
	return coeffs
}

func (a *app) logRoots(kind solver.Kind, coeffs []float64, roots []complexnum.Complex) {
	if ce := a.logger.Check(zap.DebugLevel, "solved"); ce != nil {
		worst := 0.0
		for _, r := range solver.Residuals(coeffs, roots) {
			if abs := r.Abs(); abs > worst {
				worst = abs
			}
		}
		ce.Write(
			zap.String("kind", string(kind)),
			zap.Int("roots", len(roots)),
			zap.Float64("max_residual", worst),
		)
	}
}
