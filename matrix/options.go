// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// decomposition kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultRankTolerance is the relative threshold used by QR: a column whose
	// residual norm after orthogonalization is ≤ tol·‖column‖ is treated as a
	// linear combination of earlier columns (ErrRankDeficient).
	DefaultRankTolerance = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on construction, Set and Fill.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRankToleranceInvalid = "matrix: WithRankTolerance: tol must be finite and in [0, 1)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	rankTol        float64 // [0,1); DefaultRankTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithRankTolerance sets the relative residual-norm threshold used by QR to
// detect linearly dependent columns.
// Implementation:
//   - Stage 1: validate tol is finite and 0 ≤ tol < 1.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 only rejects columns whose residual is exactly zero; expect NaN-free
//     but badly conditioned factors on nearly collinear designs.
func WithRankTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 || tol >= 1 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on matrices built
// through option-aware constructors.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		rankTol:        DefaultRankTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts in order on top of the defaults.
// Nil options are skipped. Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
