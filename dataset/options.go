// SPDX-License-Identifier: MIT

package dataset

import "go.uber.org/zap"

const panicLoggerNil = "dataset: WithLogger: logger must not be nil"

// Option configures frame construction.
type Option func(*Options)

// Options holds the effective loader configuration.
type Options struct {
	intercept bool
	logger    *zap.Logger
}

// WithIntercept prepends a ones column named InterceptName.
func WithIntercept() Option {
	return func(o *Options) { o.intercept = true }
}

// WithLogger attaches a zap logger to Query. Default zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
