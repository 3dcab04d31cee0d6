// SPDX-License-Identifier: MIT

package stepwise

import (
	"github.com/katalvlaran/lvreg/regression"
	"go.uber.org/zap"
)

const (
	panicEngineNil        = "stepwise: WithEngine: engine must not be nil"
	panicPolicyUnknown    = "stepwise: WithPolicy: unknown policy"
	panicProtectedInvalid = "stepwise: WithProtected: indices must be non-negative"
	panicLoggerNil        = "stepwise: WithLogger: logger must not be nil"
)

// Option configures a Selector.
type Option func(*Options)

// Options holds the effective selector configuration.
type Options struct {
	engine    *regression.Engine
	policy    Policy
	protected map[int]struct{}
	labels    []string
	logger    *zap.Logger
}

// WithEngine sets the regression engine (and with it α and the distribution).
func WithEngine(e *regression.Engine) Option {
	if e == nil {
		panic(panicEngineNil)
	}

	return func(o *Options) { o.engine = e }
}

// WithPolicy sets the pruning policy. Default PruneAll.
func WithPolicy(p Policy) Option {
	if p != PruneAll && p != PruneWorst {
		panic(panicPolicyUnknown)
	}

	return func(o *Options) { o.policy = p }
}

// WithProtected marks original column indices that are never pruned,
// typically the intercept. Indices beyond the design are rejected by Run.
func WithProtected(indices ...int) Option {
	for _, i := range indices {
		if i < 0 {
			panic(panicProtectedInvalid)
		}
	}
	cp := append([]int(nil), indices...)

	return func(o *Options) {
		for _, i := range cp {
			o.protected[i] = struct{}{}
		}
	}
}

// WithLabels names the original columns; len must equal the column count at Run.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)

	return func(o *Options) { o.labels = cp }
}

// WithLogger attaches a zap logger. Default zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		policy:    PruneAll,
		protected: make(map[int]struct{}),
		logger:    zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.engine == nil {
		o.engine = regression.New(regression.WithLogger(o.logger))
	}

	return o
}
