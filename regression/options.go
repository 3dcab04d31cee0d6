// SPDX-License-Identifier: MIT

package regression

import (
	"math"

	"github.com/katalvlaran/lvreg/matrix"
	"github.com/katalvlaran/lvreg/tdist"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAlpha is the two-sided significance level of the coefficient t-tests.
	DefaultAlpha = 0.05

	// DefaultRankTolerance mirrors the QR default used to reject collinear designs.
	DefaultRankTolerance = matrix.DefaultRankTolerance
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAlphaInvalid         = "regression: WithAlpha: alpha must be in (0, 1)"
	panicDistributionNil      = "regression: WithDistribution: distribution must not be nil"
	panicRankToleranceInvalid = "regression: WithRankTolerance: tol must be finite and in [0, 1)"
	panicLoggerNil            = "regression: WithLogger: logger must not be nil"
)

// Option mutates engine options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective engine configuration.
type Options struct {
	alpha   float64
	dist    tdist.Distribution
	rankTol float64
	logger  *zap.Logger
}

// WithAlpha sets the significance level; a coefficient is significant when p < alpha.
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		panic(panicAlphaInvalid)
	}

	return func(o *Options) { o.alpha = alpha }
}

// WithDistribution replaces the default tabulated Student-t distribution.
func WithDistribution(d tdist.Distribution) Option {
	if d == nil {
		panic(panicDistributionNil)
	}

	return func(o *Options) { o.dist = d }
}

// WithRankTolerance sets the relative QR rank tolerance (see matrix.WithRankTolerance).
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithLogger attaches a zap logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		alpha:   DefaultAlpha,
		dist:    tdist.NewTable(),
		rankTol: DefaultRankTolerance,
		logger:  zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
